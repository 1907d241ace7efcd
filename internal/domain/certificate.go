package domain

import "time"

const CertificateIDPrefix = "NL-"

type CertificateTemplate struct {
	ID              string    `json:"id,omitempty"`
	Title           string    `json:"title"`
	Subtitle        string    `json:"subtitle"`
	LogoURL         string    `json:"logo_url"`
	BackgroundColor string    `json:"background_color"`
	TextColor       string    `json:"text_color"`
	BorderColor     string    `json:"border_color"`
	SignatureURL    string    `json:"signature_url,omitempty"`
	SignatureText   string    `json:"signature_text,omitempty"`
	QRCodeURL       string    `json:"qr_code_url,omitempty"`
	TitleFontSize   int       `json:"title_font_size"`
	TextFontSize    int       `json:"text_font_size"`
	SignatureSize   int       `json:"signature_font_size,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
	Active          bool      `json:"active"`
}

type CertificateRecipient struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

type CertificateCourse struct {
	Title         string `json:"title"`
	Category      string `json:"category,omitempty"`
	LengthMinutes int    `json:"length_minutes,omitempty"`
	Difficulty    string `json:"difficulty,omitempty"`
}

type Certificate struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user_id,omitempty"`
	CourseID    string               `json:"course_id,omitempty"`
	Template    CertificateTemplate  `json:"template"`
	Recipient   CertificateRecipient `json:"recipient"`
	Course      CertificateCourse    `json:"course"`
	DiplomaText string               `json:"diploma_text"`
	Date        string               `json:"date"`
	VerifyURL   string               `json:"verify_url"`
	QRCodeData  string               `json:"qr_code_data"`
	PDFURL      string               `json:"pdf_url"`
	IssuedAt    time.Time            `json:"issued_at"`
}

type CertificateVerification struct {
	Valid         bool      `json:"valid"`
	CertificateID string    `json:"certificate_id"`
	Recipient     string    `json:"recipient,omitempty"`
	Course        string    `json:"course,omitempty"`
	Date          string    `json:"date,omitempty"`
	VerifiedAt    time.Time `json:"verified_at"`
}

type CertificateStatistics struct {
	Total     int    `json:"total"`
	ThisMonth int    `json:"this_month"`
	Today     int    `json:"today"`
	LatestID  string `json:"latest_id,omitempty"`
}
