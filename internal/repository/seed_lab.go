package repository

import (
	"context"
	"time"

	"github.com/neuroljus/neurohus/internal/domain"
)

// SeedLab loads the example research posts and open datasets.
func SeedLab(ctx context.Context, r *LabRepository, now time.Time) error {
	posts := []domain.ResearchPost{
		{
			ID:          "forskning-1",
			Title:       "Empatiska algoritmer i välfärdsteknik",
			Authors:     []string{"Dr. Anna Lindberg", "Prof. Erik Svensson"},
			University:  "Karolinska Institutet",
			DOI:         "10.1000/empathic-algorithms-2023",
			Abstract:    "Denna studie undersöker hur AI-teknologi kan användas för att förbättra empati och förståelse inom välfärdsteknik, särskilt för personer med neuropsykiatriska funktionsnedsättningar. Vi presenterar en ny metod för att mäta och förbättra empatiska interaktioner mellan människor och AI-system.",
			Keywords:    []string{"AI", "empati", "välfärdsteknik", "autism", "neurodiversitet"},
			Category:    "Teknologi",
			Link:        "https://example.com/empathic-algorithms",
			PDFURL:      "/lab/pdfs/empathic-algorithms-2023.pdf",
			Citations:   15,
			ImpactScore: 8.5,
		},
		{
			ID:          "forskning-2",
			Title:       "Ljus och perception i autismforskning",
			Authors:     []string{"Dr. Maria Andersson", "Dr. Lars Johansson"},
			University:  "Uppsala Universitet",
			DOI:         "10.1000/light-perception-autism-2023",
			Abstract:    "Forskning om hur olika ljusmiljöer påverkar personer med autism och hur detta kan användas för att skapa mer inkluderande miljöer. Studien visar att anpassade ljusmiljöer kan förbättra välbefinnande och minska sensorisk överbelastning.",
			Keywords:    []string{"autism", "ljus", "perception", "miljö", "sensorik"},
			Category:    "Neurovetenskap",
			Link:        "https://example.com/light-perception-autism",
			PDFURL:      "/lab/pdfs/light-perception-autism-2023.pdf",
			Citations:   8,
			ImpactScore: 7.2,
		},
		{
			ID:          "forskning-3",
			Title:       "Sociala indikatorer i svensk omsorg",
			Authors:     []string{"Prof. Sofia Eriksson", "Dr. Peter Nilsson"},
			University:  "Göteborgs Universitet",
			DOI:         "10.1000/social-indicators-care-2023",
			Abstract:    "En omfattande studie av sociala indikatorer som påverkar kvaliteten i svensk LSS-omsorg och hur dessa kan förbättras. Studien analyserar data från över 1000 verksamheter och identifierar nyckelfaktorer för framgångsrik omsorg.",
			Keywords:    []string{"LSS", "omsorg", "sociala indikatorer", "kvalitet", "Sverige"},
			Category:    "Samhällsvetenskap",
			Link:        "https://example.com/social-indicators-care",
			PDFURL:      "/lab/pdfs/social-indicators-care-2023.pdf",
			Citations:   23,
			ImpactScore: 9.1,
		},
	}
	for _, p := range posts {
		p.Year = 2023
		p.Published = true
		p.CreatedAt = now
		if _, err := r.InsertPost(ctx, p); err != nil {
			return err
		}
	}

	datasets := []domain.Dataset{
		{
			ID:          "dataset-1",
			Name:        "LSS-verksamheter Sverige 2023",
			Description: "Komplett dataset över alla LSS-verksamheter i Sverige med information om typ, kapacitet, kommun och kvalitetsindikatorer.",
			Category:    "Verksamhetsdata",
			Size:        "2.5 MB",
			Format:      "CSV",
			Source:      "Socialstyrelsen",
			License:     "CC BY 4.0",
			Downloads:   156,
		},
		{
			ID:          "dataset-2",
			Name:        "Autismforskning Sverige 2020-2023",
			Description: "Sammanställd data från svenska autismforskning med fokus på kommunikation, perception och välbefinnande.",
			Category:    "Forskningsdata",
			Size:        "8.7 MB",
			Format:      "JSON",
			Source:      "Vetenskapsrådet",
			License:     "CC BY-SA 4.0",
			Downloads:   89,
		},
		{
			ID:          "dataset-3",
			Name:        "Kommunindikatorer LSS 2023",
			Description: "KOLADA-data för LSS-relaterade indikatorer per kommun inklusive väntetider, kvalitet och tillgänglighet.",
			Category:    "Kommunaldata",
			Size:        "1.2 MB",
			Format:      "Excel",
			Source:      "KOLADA",
			License:     "CC0",
			Downloads:   234,
		},
	}
	for _, d := range datasets {
		d.Active = true
		d.CreatedAt = now
		d.UpdatedAt = now
		if _, err := r.InsertDataset(ctx, d); err != nil {
			return err
		}
	}

	return nil
}
