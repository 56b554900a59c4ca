package utils

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ImportedScheduling is one parsed CSV row, ready to be mapped onto a
// scheduling record by the import handler.
type ImportedScheduling struct {
	OrderNumber   string
	Client        string
	Phone         string
	Service       string
	Location      string
	ScheduledDate string
	ScheduledTime string
	Value         float64
	Status        string
	Team          string
	Salesperson   string
	Observation   string
}

var (
	ErrEmptyFile = errors.New("file is empty")
	ErrNoData    = errors.New("file has no data rows")
	ErrNoColumns = errors.New("no client or service column found")

	isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	brDateRe  = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`)
)

// DetectDelimiter picks ';' or ',' depending on which occurs more often
// on the header line. Ties go to ','.
func DetectDelimiter(line string) string {
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ";"
	}
	return ","
}

// ParseCurrency converts strings like "R$ 1.234,56" to 1234.56. The
// currency prefix and whitespace are stripped; when a decimal comma is
// present, dots are treated as thousands separators. Unparseable input
// yields 0.
func ParseCurrency(val string) float64 {
	clean := strings.NewReplacer("R", "", "$", "", " ", "", "\t", "").Replace(strings.TrimSpace(val))
	if clean == "" {
		return 0
	}
	if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}
	n, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	return n
}

// NormalizeDate converts DD/MM/YYYY to YYYY-MM-DD. Already-ISO strings
// and anything else pass through unchanged.
func NormalizeDate(val string) string {
	s := strings.TrimSpace(val)
	if s == "" {
		return ""
	}
	if isoDateRe.MatchString(s) {
		return s
	}
	if brDateRe.MatchString(s) {
		parts := strings.Split(s[:10], "/")
		return parts[2] + "-" + parts[1] + "-" + parts[0]
	}
	return s
}

// MapImportStatus normalizes free-form status text from spreadsheets.
func MapImportStatus(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "resolvido"), strings.Contains(s, "concluido"), strings.Contains(s, "resolved"):
		return "resolved"
	case strings.Contains(s, "andamento"), strings.Contains(s, "progress"):
		return "in_progress"
	default:
		return "pending"
	}
}

// headerIndex finds the first header containing any of the synonyms
// (case-insensitive substring match). Returns -1 when absent.
func headerIndex(headers []string, synonyms ...string) int {
	for i, h := range headers {
		for _, syn := range synonyms {
			if strings.Contains(h, strings.ToLower(syn)) {
				return i
			}
		}
	}
	return -1
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	v := strings.NewReplacer(`"`, "", "'", "").Replace(row[idx])
	return strings.TrimSpace(v)
}

// ParseSchedulingCSV parses raw CSV text into scheduling rows using the
// delimiter and header-synonym heuristic. Rows with fewer than two cells
// or an empty client are skipped; the whole import fails when neither a
// client nor a service column can be located.
func ParseSchedulingCSV(text string) ([]ImportedScheduling, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyFile
	}

	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil, ErrNoData
	}

	sep := DetectDelimiter(lines[0])
	headers := strings.Split(lines[0], sep)
	for i, h := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	idxClient := headerIndex(headers, "cliente", "nome")
	idxService := headerIndex(headers, "servico", "serviço")
	if idxClient == -1 && idxService == -1 {
		return nil, ErrNoColumns
	}

	var rows []ImportedScheduling
	for _, line := range lines[1:] {
		row := strings.Split(line, sep)
		if len(row) < 2 {
			continue
		}

		client := cellValue(row, idxClient)
		if client == "" {
			continue
		}
		service := cellValue(row, idxService)
		if service == "" {
			service = "Geral"
		}

		rows = append(rows, ImportedScheduling{
			OrderNumber:   cellValue(row, headerIndex(headers, "ordem", "numero")),
			Client:        client,
			Phone:         cellValue(row, headerIndex(headers, "telefone", "contato")),
			Service:       service,
			Location:      cellValue(row, headerIndex(headers, "local", "endereco")),
			ScheduledDate: NormalizeDate(cellValue(row, headerIndex(headers, "data", "agendada"))),
			ScheduledTime: cellValue(row, headerIndex(headers, "hora")),
			Value:         ParseCurrency(cellValue(row, headerIndex(headers, "valor", "preco"))),
			Status:        MapImportStatus(cellValue(row, headerIndex(headers, "status"))),
			Team:          cellValue(row, headerIndex(headers, "equipe", "tecnico")),
			Salesperson:   cellValue(row, headerIndex(headers, "vendedor")),
			Observation:   cellValue(row, headerIndex(headers, "obs", "observacao")),
		})
	}

	return rows, nil
}
