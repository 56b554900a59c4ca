package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	headers := []string{"Ordem", "Cliente", "Valor"}
	rows := [][]string{
		{"01", "João", "150.00"},
		{"02", "Maria", "0.00"},
	}

	if err := WriteCSV(&buf, headers, rows); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Ordem;Cliente;Valor" {
		t.Errorf("unexpected header line %q", lines[0])
	}
	if lines[1] != "01;João;150.00" {
		t.Errorf("unexpected data line %q", lines[1])
	}
}

func TestWriteExcelProducesWorkbook(t *testing.T) {
	var buf bytes.Buffer
	err := WriteExcel(&buf, "Agendamentos", []string{"Ordem", "Cliente"}, [][]string{{"01", "João"}})
	if err != nil {
		t.Fatalf("WriteExcel failed: %v", err)
	}
	// xlsx files are zip archives
	if buf.Len() < 4 || buf.Bytes()[0] != 'P' || buf.Bytes()[1] != 'K' {
		t.Error("output does not look like an xlsx archive")
	}
}

func TestWritePDFProducesDocument(t *testing.T) {
	var buf bytes.Buffer
	err := WritePDF(&buf, "Relatório", []string{"Ordem", "Cliente"}, [][]string{{"01", "João"}})
	if err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Error("output does not look like a PDF document")
	}
}
