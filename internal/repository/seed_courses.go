package repository

import (
	"context"
	"time"

	"github.com/neuroljus/neurohus/internal/domain"
)

const SeedCourseID = "kommunikation-och-lugn-kontakt"

// SeedCourses loads the first Academy course.
func SeedCourses(ctx context.Context, r *CourseRepository, now time.Time) error {
	course := domain.Course{
		ID:            SeedCourseID,
		Title:         "Kommunikation och lugn kontakt",
		Description:   "En grundläggande kurs om hur man kommunicerar empatiskt med personer som har autism och neuropsykiatriska funktionsnedsättningar. Kursen fokuserar på praktiska verktyg och metoder för att skapa trygga kommunikationssituationer.",
		Category:      "Kommunikation",
		Difficulty:    "nybörjare",
		Audience:      []string{"familj", "assistent"},
		LengthMinutes: 45,
		Modules: []domain.CourseModule{
			{
				Title:         "Förstå autism och kommunikation",
				Content:       "Autism påverkar hur personer uppfattar och kommunicerar med världen. Vi går igenom grundläggande förståelse för olika kommunikationsstilar och hur man kan anpassa sin kommunikation för att vara mer inkluderande.",
				Example:       "En person med autism kan behöva mer tid att processa information. Ge dem tid att svara innan du upprepar frågan.",
				LengthMinutes: 8,
			},
			{
				Title:         "Lugn och tydlig kommunikation",
				Content:       "Hur man skapar en lugn kommunikationsmiljö med tydliga signaler och förutsägbar struktur. Vi lär oss om vikten av att minska sensorisk överbelastning och skapa trygga kommunikationssituationer.",
				Example:       "Använd korta, tydliga meningar. Undvik ironi och metaforer som kan vara förvirrande.",
				LengthMinutes: 10,
			},
			{
				Title:         "Visuell kommunikation",
				Content:       "Bilder, symboler och visuella hjälpmedel kan förbättra förståelsen avsevärt. Vi utforskar olika visuella kommunikationsmetoder och hur de kan användas i vardagen.",
				Example:       "Använd bilder för att visa vad som kommer att hända härnäst, som en visuell schema.",
				LengthMinutes: 9,
			},
			{
				Title:         "Lyssna med hela kroppen",
				Content:       "Kommunikation handlar inte bara om ord. Kroppsspråk, ansiktsuttryck och tonfall är lika viktiga. Vi lär oss att läsa och förstå icke-verbal kommunikation.",
				Example:       "Märk när en person blir obekväm eller stressad genom att observera deras kroppsspråk.",
				LengthMinutes: 8,
			},
			{
				Title:         "Skapa trygga relationer",
				Content:       "Bygg förtroende genom konsekvent beteende, respekt för gränser och genuin empati. Vi utforskar hur man skapar långsiktiga, meningsfulla relationer.",
				Example:       "Respektera när någon behöver en paus eller vill vara ensam. Det är inte en avvisning av dig.",
				LengthMinutes: 10,
			},
		},
		Quiz: []domain.QuizQuestion{
			{
				Question:      "Vad är viktigt att komma ihåg när man kommunicerar med en person som har autism?",
				Options:       []string{"Använda korta, tydliga meningar", "Prata snabbt för att få svar", "Använda mycket ironi", "Undvika ögonkontakt"},
				CorrectAnswer: 0,
				Explanation:   "Korta, tydliga meningar hjälper personer med autism att förstå och processa information bättre.",
			},
			{
				Question:      "Vilken typ av kommunikation kan vara förvirrande för personer med autism?",
				Options:       []string{"Tydliga instruktioner", "Metaforer och ironi", "Visuella hjälpmedel", "Korta meningar"},
				CorrectAnswer: 1,
				Explanation:   "Metaforer och ironi kan vara svåra att förstå för personer med autism som ofta tar saker bokstavligt.",
			},
			{
				Question:      "Vad betyder det att 'lyssna med hela kroppen'?",
				Options:       []string{"Bara lyssna på ord", "Observera kroppsspråk och ansiktsuttryck", "Prata högt", "Undvika ögonkontakt"},
				CorrectAnswer: 1,
				Explanation:   "Kommunikation handlar inte bara om ord - kroppsspråk och ansiktsuttryck ger viktig information.",
			},
			{
				Question:      "Hur kan du visa respekt för en persons gränser?",
				Options:       []string{"Fortsätta prata även om de verkar obekväma", "Respektera när de behöver en paus", "Ignorera deras kroppsspråk", "Tvinga dem att svara"},
				CorrectAnswer: 1,
				Explanation:   "Att respektera när någon behöver en paus visar att du förstår och respekterar deras behov.",
			},
			{
				Question:      "Vad är viktigt för att skapa trygga relationer?",
				Options:       []string{"Konsekvent beteende och respekt", "Varierande rutiner", "Ignorera personens behov", "Bara fokusera på ord"},
				CorrectAnswer: 0,
				Explanation:   "Konsekvent beteende och respekt för personens behov är grunden för trygga relationer.",
			},
		},
		CreatedAt: now,
		Active:    true,
		Language:  "sv",
	}

	_, err := r.CreateCourse(ctx, course)

	return err
}
