package repository

import (
	"context"
	"time"

	"github.com/neuroljus/neurohus/internal/domain"
)

// SeedGuides loads the Swedish process guides for applying, appealing and
// family rights.
func SeedGuides(ctx context.Context, r *GuideRepository, now time.Time) error {
	guides := []domain.Guide{
		{
			ID:          "lss-ansökan-sv",
			Title:       "Hur ansöker man om LSS?",
			Description: "En steg-för-steg guide för att ansöka om LSS-insatser. Inkluderar vilka dokument som behövs, var man ansöker och vad som händer efter ansökan.",
			Category:    "Ansökan",
			Audience:    []string{"familj", "brukare"},
			Steps: []domain.GuideStep{
				{
					Step: 1, Heading: "Förberedelser", Description: "Innan du ansöker om LSS-insatser",
					Content: []string{
						"Samla in medicinska intyg och utredningar som visar ditt behov av stöd",
						"Kontakta din kommuns LSS-handläggare för information om processen",
						"Förbered dokumentation om din nuvarande situation och behov",
						"Överväg vilka typer av insatser som skulle passa dig bäst",
					},
					Documents: []string{
						"Medicinska intyg",
						"Utredningar från BUP, habilitering eller liknande",
						"Dokumentation av nuvarande behov",
						"Personlig assistansbedömning (om relevant)",
					},
					Tips: []string{
						"Börja samla dokumentation i god tid",
						"Kontakta tidigt med din kommun för rådgivning",
						"Be om hjälp från familj eller stödpersoner",
					},
				},
				{
					Step: 2, Heading: "Ansökan", Description: "Så här gör du ansökan",
					Content: []string{
						"Fyll i LSS-ansökan (formulär från din kommun)",
						"Bifoga alla nödvändiga dokument",
						"Beskriv ditt behov av stöd tydligt och konkret",
						"Skicka in ansökan till din kommun",
					},
					Documents: []string{"LSS-ansökan (kommunens formulär)", "Medicinska intyg", "Utredningar", "Personlig assistansbedömning"},
					Tips: []string{
						"Var konkret när du beskriver dina behov",
						"Inkludera alla relevanta dokument",
						"Be om kvitto på att ansökan mottagits",
					},
				},
				{
					Step: 3, Heading: "Handläggning", Description: "Vad händer efter ansökan",
					Content: []string{
						"Kommunen handlägger din ansökan",
						"Du kan bli kallad till samtal eller möten",
						"Kommunen fattar beslut om insatser",
						"Du får ett skriftligt beslut",
					},
					Documents: []string{"Beslut från kommunen", "Information om insatser", "Kontaktuppgifter till handläggare"},
					Tips: []string{
						"Håll kontakt med din handläggare",
						"Ställ frågor om du inte förstår något",
						"Be om skriftlig information",
					},
				},
				{
					Step: 4, Heading: "Efter beslut", Description: "När du fått beslut",
					Content: []string{
						"Läs igenom beslutet noggrant",
						"Kontakta kommunen om du har frågor",
						"Börja planera implementeringen av insatser",
						"Överväg överklagan om du inte är nöjd",
					},
					Documents: []string{"Beslut från kommunen", "Plan för insatser", "Kontaktuppgifter"},
					Tips: []string{
						"Spara alla dokument på en säker plats",
						"Kontakta kommunen direkt om frågor",
						"Överväg stöd från familj eller organisationer",
					},
				},
			},
		},
		{
			ID:          "lss-överklagan-sv",
			Title:       "Hur överklagar man ett LSS-beslut?",
			Description: "Guide för att överklaga ett LSS-beslut som du inte är nöjd med. Inkluderar tidsfrister, process och vad som händer vid överklagan.",
			Category:    "Överklagan",
			Audience:    []string{"familj", "brukare"},
			Steps: []domain.GuideStep{
				{
					Step: 1, Heading: "Förstå beslutet", Description: "Analysera beslutet innan du överklagar",
					Content: []string{
						"Läs igenom beslutet noggrant",
						"Förstå vad kommunen har beslutat",
						"Identifiera vilka delar du vill överklaga",
						"Kontrollera tidsfrister för överklagan",
					},
					Documents: []string{"Beslut från kommunen", "LSS-lagen (för referens)", "Kommunens rutiner för överklagan"},
					Tips: []string{
						"Sök juridisk rådgivning om du är osäker",
						"Kontakta LSS-handläggaren för förtydliganden",
						"Samla in ytterligare dokumentation om behovet",
					},
				},
				{
					Step: 2, Heading: "Förbered överklagan", Description: "Så här förbereder du överklagan",
					Content: []string{
						"Samla in ytterligare dokumentation",
						"Skriv en tydlig motivering till överklagan",
						"Kontakta eventuella stödpersoner eller organisationer",
						"Förbered alla nödvändiga dokument",
					},
					Documents: []string{
						"Ytterligare medicinska intyg",
						"Nya utredningar",
						"Motivering till överklagan",
						"Stödbrev från familj eller organisationer",
					},
					Tips: []string{
						"Var konkret i din motivering",
						"Inkludera alla relevanta dokument",
						"Sök stöd från organisationer som Riksförbundet för Utvecklingsstörda",
					},
				},
				{
					Step: 3, Heading: "Skicka överklagan", Description: "Så här skickar du överklagan",
					Content: []string{
						"Fyll i överklagansformulär",
						"Bifoga alla dokument",
						"Skicka till rätt myndighet inom tidsfrist",
						"Be om kvitto på att överklagan mottagits",
					},
					Documents: []string{"Överklagansformulär", "Motivering", "Alla relevanta dokument", "Kvitto på mottagande"},
					Tips: []string{
						"Respektera tidsfrister (oftast 3 veckor)",
						"Skicka med rekommenderat brev",
						"Be om kvitto på mottagande",
					},
				},
				{
					Step: 4, Heading: "Handläggning av överklagan", Description: "Vad händer efter överklagan",
					Content: []string{
						"Myndigheten handlägger överklagan",
						"Du kan bli kallad till samtal eller möten",
						"Myndigheten fattar nytt beslut",
						"Du får skriftligt beslut",
					},
					Documents: []string{"Nytt beslut från myndigheten", "Motivering till beslutet", "Information om vidare överklagan"},
					Tips: []string{
						"Håll kontakt med handläggaren",
						"Ställ frågor om processen",
						"Överväg vidare överklagan om nödvändigt",
					},
				},
			},
		},
		{
			ID:          "familjens-rättigheter-sv",
			Title:       "Familjens rättigheter i LSS-systemet",
			Description: "En guide som förklarar familjens rättigheter och möjligheter inom LSS-systemet. Inkluderar information om stöd, rådgivning och delaktighet.",
			Category:    "Rättigheter",
			Audience:    []string{"familj"},
			Steps: []domain.GuideStep{
				{
					Step: 1, Heading: "Rätt till information", Description: "Familjens rätt till information",
					Content: []string{
						"Rätt till tydlig information om LSS-insatser",
						"Rätt till förklaring av beslut",
						"Rätt till information om överklagan",
						"Rätt till regelbunden uppdatering",
					},
					Documents: []string{"Information om LSS-insatser", "Beslut från kommunen", "Rutiner för information", "Kontaktuppgifter"},
					Tips:      []string{"Be om skriftlig information", "Ställ frågor om du inte förstår", "Kräv tydliga förklaringar"},
				},
				{
					Step: 2, Heading: "Rätt till delaktighet", Description: "Familjens rätt till delaktighet",
					Content: []string{
						"Rätt att delta i planering av insatser",
						"Rätt att ge sin åsikt om insatser",
						"Rätt att vara med vid utvärdering",
						"Rätt till regelbunden kontakt",
					},
					Documents: []string{"Plan för insatser", "Utvärderingsrapporter", "Mötesprotokoll", "Kontaktuppgifter"},
					Tips:      []string{"Kräv att vara med vid möten", "Ge din åsikt om insatser", "Be om regelbunden kontakt"},
				},
				{
					Step: 3, Heading: "Rätt till stöd", Description: "Familjens rätt till stöd",
					Content: []string{
						"Rätt till rådgivning och stöd",
						"Rätt till information om stödorganisationer",
						"Rätt till ekonomiskt stöd vid behov",
						"Rätt till respitvård",
					},
					Documents: []string{
						"Information om stödorganisationer",
						"Rådgivning från kommunen",
						"Information om ekonomiskt stöd",
						"Plan för respitvård",
					},
					Tips: []string{"Sök rådgivning från kommunen", "Kontakta stödorganisationer", "Be om information om ekonomiskt stöd"},
				},
				{
					Step: 4, Heading: "Rätt till överklagan", Description: "Familjens rätt till överklagan",
					Content: []string{
						"Rätt att överklaga beslut",
						"Rätt till juridisk rådgivning",
						"Rätt till stöd vid överklagan",
						"Rätt till information om processen",
					},
					Documents: []string{"Information om överklagan", "Juridisk rådgivning", "Stöd från organisationer", "Processinformation"},
					Tips:      []string{"Sök juridisk rådgivning", "Kontakta stödorganisationer", "Följ tidsfrister noggrant"},
				},
			},
		},
	}

	for _, g := range guides {
		g.Language = "sv"
		g.Active = true
		g.CreatedAt = now
		g.UpdatedAt = now
		if _, err := r.Insert(ctx, g); err != nil {
			return err
		}
	}

	return nil
}
