package export

import (
	"fmt"
	"strings"

	"github.com/cvforge/go-cvexport/cv"
	"github.com/xuri/excelize/v2"
)

// renderXLSX produces a structured workbook: a profile sheet plus one sheet
// per visible section that has tabular content.
func renderXLSX(m cv.Model) ([]byte, error) {
	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()

	headerID, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, NewError(KindInternal, "xlsx style failed", err)
	}

	first := true
	writeSheet := func(name string, headers []string, rows [][]any) error {
		if first {
			file.SetSheetName(file.GetSheetName(0), name)
			first = false
		} else {
			if _, err := file.NewSheet(name); err != nil {
				return err
			}
		}

		stream, err := file.NewStreamWriter(name)
		if err != nil {
			return err
		}
		headerCells := make([]any, len(headers))
		for i, label := range headers {
			headerCells[i] = excelize.Cell{StyleID: headerID, Value: label}
		}
		if err := stream.SetRow("A1", headerCells); err != nil {
			return err
		}
		for i, row := range rows {
			if err := stream.SetRow(fmt.Sprintf("A%d", i+2), row); err != nil {
				return err
			}
		}
		return stream.Flush()
	}

	profile := [][]any{
		{"Full Name", cv.Sanitize(m.Personal.FullName)},
		{"Title", cv.Sanitize(m.Personal.Title)},
		{"Email", m.Personal.Email},
		{"Phone", m.Personal.Phone},
		{"Address", m.Personal.Address},
		{"Website", m.Personal.Website},
		{"LinkedIn", m.Personal.LinkedIn},
		{"GitHub", m.Personal.GitHub},
		{"Summary", cv.Sanitize(m.Personal.Summary)},
	}
	if err := writeSheet("Profile", []string{"Field", "Value"}, profile); err != nil {
		return nil, NewError(KindInternal, "xlsx profile sheet failed", err)
	}

	for _, s := range cv.VisibleSections(m) {
		name, headers, rows := xlsxSection(m, s)
		if len(rows) == 0 {
			continue
		}
		if err := writeSheet(name, headers, rows); err != nil {
			return nil, NewError(KindInternal, fmt.Sprintf("xlsx sheet %q failed", name), err)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, NewError(KindInternal, "xlsx write failed", err)
	}
	return buf.Bytes(), nil
}

func xlsxSection(m cv.Model, s cv.Section) (string, []string, [][]any) {
	switch s.Type {
	case cv.SectionExperience:
		rows := make([][]any, 0, len(m.Experience))
		for _, exp := range m.Experience {
			rows = append(rows, []any{
				exp.Company, exp.Position, exp.Location,
				exp.StartDate, endOrPresent(exp.EndDate, exp.Current),
				cv.Sanitize(exp.Description), strings.Join(exp.Achievements, "; "),
			})
		}
		return "Experience", []string{"Company", "Position", "Location", "Start", "End", "Description", "Achievements"}, rows
	case cv.SectionEducation:
		rows := make([][]any, 0, len(m.Education))
		for _, edu := range m.Education {
			rows = append(rows, []any{
				edu.Institution, edu.Degree, edu.Field, edu.Location,
				edu.StartDate, edu.EndDate, cv.Sanitize(edu.Description),
			})
		}
		return "Education", []string{"Institution", "Degree", "Field", "Location", "Start", "End", "Description"}, rows
	case cv.SectionSkills:
		rows := make([][]any, 0, len(m.Skills))
		for _, skill := range m.Skills {
			rows = append(rows, []any{skill.Name, skill.Category, skill.Level})
		}
		return "Skills", []string{"Skill", "Category", "Level"}, rows
	case cv.SectionProjects:
		rows := make([][]any, 0, len(m.Projects))
		for _, project := range m.Projects {
			rows = append(rows, []any{
				project.Name, cv.Sanitize(project.Description),
				strings.Join(project.Technologies, ", "), project.URL,
				project.StartDate, project.EndDate,
			})
		}
		return "Projects", []string{"Project", "Description", "Technologies", "URL", "Start", "End"}, rows
	case cv.SectionCertifications:
		rows := make([][]any, 0, len(m.Certifications))
		for _, cert := range m.Certifications {
			rows = append(rows, []any{cert.Name, cert.Issuer, cert.Date, cert.URL})
		}
		return "Certifications", []string{"Certification", "Issuer", "Date", "URL"}, rows
	case cv.SectionLanguages:
		rows := make([][]any, 0, len(m.Languages))
		for _, lang := range m.Languages {
			rows = append(rows, []any{lang.Name, lang.Proficiency})
		}
		return "Languages", []string{"Language", "Proficiency"}, rows
	case cv.SectionReferences:
		if !cv.ReferencesDetailedMode(m) {
			return "References", []string{"Note"}, [][]any{{cv.ReferencesPlaceholder}}
		}
		rows := make([][]any, 0, len(m.References))
		for _, ref := range m.References {
			rows = append(rows, []any{ref.Name, ref.Position, ref.Company, ref.Email, ref.Phone})
		}
		return "References", []string{"Name", "Position", "Company", "Email", "Phone"}, rows
	default:
		return "", nil, nil
	}
}

func endOrPresent(end string, current bool) string {
	if current {
		return "Present"
	}
	return end
}
