package utils

import "testing"

func TestDetectDelimiter(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"Cliente;Servico;Valor", ";"},
		{"Cliente,Servico,Valor", ","},
		{"Cliente;Servico,Valor,Data", ","},
		{"Cliente", ","},
	}
	for _, tc := range cases {
		if got := DetectDelimiter(tc.line); got != tc.want {
			t.Errorf("DetectDelimiter(%q) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestParseCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"R$ 1.234,56", 1234.56},
		{"R$ 150,00", 150},
		{"1234.56", 1234.56},
		{"350", 350},
		{"", 0},
		{"abc", 0},
	}
	for _, tc := range cases {
		if got := ParseCurrency(tc.in); got != tc.want {
			t.Errorf("ParseCurrency(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"31/12/2024", "2024-12-31"},
		{"2024-12-31", "2024-12-31"},
		{"", ""},
		{"amanhã", "amanhã"},
	}
	for _, tc := range cases {
		if got := NormalizeDate(tc.in); got != tc.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMapImportStatus(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Resolvido", "resolved"},
		{"concluido", "resolved"},
		{"Em Andamento", "in_progress"},
		{"in progress", "in_progress"},
		{"Pendente", "pending"},
		{"", "pending"},
	}
	for _, tc := range cases {
		if got := MapImportStatus(tc.in); got != tc.want {
			t.Errorf("MapImportStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseSchedulingCSV(t *testing.T) {
	text := "Ordem;Cliente;Telefone;Servico;Local;Data;Hora;Valor;Status;Equipe;Vendedor\n" +
		"01;João Silva;11999990000;Instalação Solar;Rua A 123;31/12/2024;14:30;R$ 1.234,56;Pendente;Equipe Alpha;Carlos\n" +
		";Maria;;;;;;;Resolvido;;\n"

	rows, err := ParseSchedulingCSV(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.OrderNumber != "01" || first.Client != "João Silva" {
		t.Errorf("unexpected first row identity: %+v", first)
	}
	if first.ScheduledDate != "2024-12-31" {
		t.Errorf("expected normalized date, got %q", first.ScheduledDate)
	}
	if first.Value != 1234.56 {
		t.Errorf("expected value 1234.56, got %v", first.Value)
	}
	if first.Status != "pending" {
		t.Errorf("expected pending status, got %q", first.Status)
	}

	second := rows[1]
	if second.Service != "Geral" {
		t.Errorf("empty service should default to Geral, got %q", second.Service)
	}
	if second.Status != "resolved" {
		t.Errorf("expected resolved status, got %q", second.Status)
	}
}

func TestParseSchedulingCSVSkipsBlankClients(t *testing.T) {
	text := "Cliente;Servico\nJoão;Instalação\n;Limpeza\n"

	rows, err := ParseSchedulingCSV(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Client != "João" {
		t.Errorf("unexpected client %q", rows[0].Client)
	}
}

func TestParseSchedulingCSVErrors(t *testing.T) {
	if _, err := ParseSchedulingCSV("   "); err != ErrEmptyFile {
		t.Errorf("blank input: expected ErrEmptyFile, got %v", err)
	}
	if _, err := ParseSchedulingCSV("Cliente;Servico"); err != ErrNoData {
		t.Errorf("header only: expected ErrNoData, got %v", err)
	}
	if _, err := ParseSchedulingCSV("Foo;Bar\nx;y"); err != ErrNoColumns {
		t.Errorf("no known columns: expected ErrNoColumns, got %v", err)
	}
}
