package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/neuroljus/neurohus/internal/domain"
)

type CourseModule struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Example       string `json:"example"`
	LengthMinutes int    `json:"length_minutes"`
}

func (m CourseModule) Validate() error {
	return validation.ValidateStruct(
		&m,
		validation.Field(&m.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&m.LengthMinutes, validation.Min(0)),
	)
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

func (q QuizQuestion) Validate() error {
	return validation.ValidateStruct(
		&q,
		validation.Field(&q.Question, validation.Required),
		validation.Field(&q.Options, validation.Required, validation.Length(2, 10)),
		validation.Field(&q.CorrectAnswer, validation.Min(0), validation.Max(len(q.Options)-1)),
	)
}

type CreateCourseRequest struct {
	Title         string         `json:"title" binding:"required"`
	Description   string         `json:"description"`
	Category      string         `json:"category" binding:"required"`
	Difficulty    string         `json:"difficulty"`
	Audience      []string       `json:"audience"`
	LengthMinutes int            `json:"length_minutes"`
	Modules       []CourseModule `json:"modules"`
	Quiz          []QuizQuestion `json:"quiz"`
	Language      string         `json:"language"`
}

func (req *CreateCourseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Category, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.LengthMinutes, validation.Min(0)),
		validation.Field(&req.Modules, validation.Required),
		validation.Field(&req.Quiz),
		validation.Field(&req.Language, validation.Length(2, 5)),
	)
}

func (req *CreateCourseRequest) Course() domain.Course {
	modules := make([]domain.CourseModule, 0, len(req.Modules))
	for _, m := range req.Modules {
		modules = append(modules, domain.CourseModule(m))
	}
	quiz := make([]domain.QuizQuestion, 0, len(req.Quiz))
	for _, q := range req.Quiz {
		quiz = append(quiz, domain.QuizQuestion(q))
	}

	return domain.Course{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Difficulty:    req.Difficulty,
		Audience:      req.Audience,
		LengthMinutes: req.LengthMinutes,
		Modules:       modules,
		Quiz:          quiz,
		Language:      req.Language,
	}
}

type UserRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

func (req *UserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required),
	)
}

type SubmitQuizRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Answers []int  `json:"answers" binding:"required"`
	Name    string `json:"name"`
}

func (req *SubmitQuizRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Answers, validation.Required),
		validation.Field(&req.Name, validation.Length(0, 100)),
	)
}

type CreateTemplateRequest struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	LogoURL         string `json:"logo_url"`
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
	BorderColor     string `json:"border_color"`
	SignatureURL    string `json:"signature_url"`
	SignatureText   string `json:"signature_text"`
	QRCodeURL       string `json:"qr_code_url"`
	TitleFontSize   int    `json:"title_font_size"`
	TextFontSize    int    `json:"text_font_size"`
	SignatureSize   int    `json:"signature_font_size"`
}

func (req *CreateTemplateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Length(0, 100)),
		validation.Field(&req.BackgroundColor, validation.Match(hexColor)),
		validation.Field(&req.TextColor, validation.Match(hexColor)),
		validation.Field(&req.BorderColor, validation.Match(hexColor)),
		validation.Field(&req.TitleFontSize, validation.Min(0), validation.Max(72)),
		validation.Field(&req.TextFontSize, validation.Min(0), validation.Max(72)),
		validation.Field(&req.SignatureSize, validation.Min(0), validation.Max(72)),
	)
}

func (req *CreateTemplateRequest) Template() domain.CertificateTemplate {
	return domain.CertificateTemplate{
		Title:           req.Title,
		Subtitle:        req.Subtitle,
		LogoURL:         req.LogoURL,
		BackgroundColor: req.BackgroundColor,
		TextColor:       req.TextColor,
		BorderColor:     req.BorderColor,
		SignatureURL:    req.SignatureURL,
		SignatureText:   req.SignatureText,
		QRCodeURL:       req.QRCodeURL,
		TitleFontSize:   req.TitleFontSize,
		TextFontSize:    req.TextFontSize,
		SignatureSize:   req.SignatureSize,
	}
}
