package domain

import "time"

type ProgressStatus string

const (
	ProgressStarted      ProgressStatus = "started"
	ProgressReadyForQuiz ProgressStatus = "ready_for_quiz"
	ProgressCompleted    ProgressStatus = "completed"
)

type CourseModule struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Example       string `json:"example"`
	LengthMinutes int    `json:"length_minutes"`
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type Course struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Category      string         `json:"category"`
	Difficulty    string         `json:"difficulty"`
	Audience      []string       `json:"audience"`
	LengthMinutes int            `json:"length_minutes"`
	Modules       []CourseModule `json:"modules"`
	Quiz          []QuizQuestion `json:"quiz"`
	CreatedAt     time.Time      `json:"created_at"`
	Active        bool           `json:"active"`
	Language      string         `json:"language"`
}

func (c Course) ForAudience(audience string) bool {
	for _, a := range c.Audience {
		if a == audience {
			return true
		}
	}

	return false
}

type QuizAnswerResult struct {
	Question      string `json:"question"`
	Answer        int    `json:"answer"`
	CorrectAnswer int    `json:"correct_answer"`
	Correct       bool   `json:"correct"`
	Explanation   string `json:"explanation"`
}

type CourseProgress struct {
	UserID           string             `json:"user_id"`
	CourseID         string             `json:"course_id"`
	Status           ProgressStatus     `json:"status"`
	ProgressPercent  float64            `json:"progress_percent"`
	QuizScore        float64            `json:"quiz_score"`
	StartedAt        time.Time          `json:"started_at"`
	FinishedAt       *time.Time         `json:"finished_at"`
	CertificateURL   string             `json:"certificate_url,omitempty"`
	CompletedModules []int              `json:"completed_modules"`
	QuizAnswers      []QuizAnswerResult `json:"quiz_answers"`
}

// CompleteModule records index once and recomputes the percentage against
// total modules. Reaching 100% moves a started course to ready_for_quiz.
func (p *CourseProgress) CompleteModule(index, total int) {
	for _, done := range p.CompletedModules {
		if done == index {
			return
		}
	}
	p.CompletedModules = append(p.CompletedModules, index)

	if total == 0 {
		return
	}
	p.ProgressPercent = float64(len(p.CompletedModules)) / float64(total) * 100
	if p.ProgressPercent >= 100 && p.Status == ProgressStarted {
		p.Status = ProgressReadyForQuiz
	}
}

type QuizResult struct {
	ScorePercent         float64            `json:"score_percent"`
	CorrectAnswers       int                `json:"correct_answers"`
	TotalQuestions       int                `json:"total_questions"`
	Results              []QuizAnswerResult `json:"results"`
	CertificateAvailable bool               `json:"certificate_available"`
	CertificateURL       string             `json:"certificate_url,omitempty"`
	Certificate          *Certificate       `json:"certificate,omitempty"`
}

type UserCourse struct {
	Course   CourseSummary  `json:"course"`
	Progress CourseProgress `json:"progress"`
}

type CourseSummary struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category"`
	Difficulty    string    `json:"difficulty,omitempty"`
	Audience      []string  `json:"audience,omitempty"`
	LengthMinutes int       `json:"length_minutes"`
	ModuleCount   int       `json:"module_count"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
	Language      string    `json:"language,omitempty"`
}

func (c Course) Summary() CourseSummary {
	return CourseSummary{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		Category:      c.Category,
		Difficulty:    c.Difficulty,
		Audience:      c.Audience,
		LengthMinutes: c.LengthMinutes,
		ModuleCount:   len(c.Modules),
		QuestionCount: len(c.Quiz),
		CreatedAt:     c.CreatedAt,
		Language:      c.Language,
	}
}

// Clone copies the slices so the result can leave the store's lock.
func (p CourseProgress) Clone() CourseProgress {
	c := p
	c.CompletedModules = append([]int(nil), p.CompletedModules...)
	c.QuizAnswers = append([]QuizAnswerResult(nil), p.QuizAnswers...)
	if p.FinishedAt != nil {
		finished := *p.FinishedAt
		c.FinishedAt = &finished
	}

	return c
}

// PublicQuestion is a quiz question without its answer key.
type PublicQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Explanation string   `json:"explanation"`
}

type CourseDetails struct {
	CourseSummary
	Modules []CourseModule   `json:"modules"`
	Quiz    []PublicQuestion `json:"quiz"`
}

func (c Course) Details() CourseDetails {
	quiz := make([]PublicQuestion, 0, len(c.Quiz))
	for _, q := range c.Quiz {
		quiz = append(quiz, PublicQuestion{Question: q.Question, Options: q.Options, Explanation: q.Explanation})
	}

	return CourseDetails{
		CourseSummary: c.Summary(),
		Modules:       c.Modules,
		Quiz:          quiz,
	}
}
