package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Format(""))
}

func TestFormat_SentenceBreaks(t *testing.T) {
	got := Format("O carro vale 40 mil. A parcela atrasada soma 12 mil.")
	assert.Equal(t, "O carro vale 40 mil.\n\nA parcela atrasada soma 12 mil.", got)
}

func TestFormat_DecimalNumbersUntouched(t *testing.T) {
	got := Format("O aluguel rende R$ 2.500/mês")
	assert.Equal(t, "O aluguel rende R$ 2.500/mês", got)
}

func TestFormat_InlineListMarkers(t *testing.T) {
	got := Format("Temos dois caminhos: 1. Vender o carro 2. Alugar o carro")
	assert.Contains(t, got, ":\n\n- 1. Vender o carro")
	assert.Contains(t, got, "\n\n- 2. Alugar o carro")
}

func TestFormat_KeywordEmphasis(t *testing.T) {
	got := Format("Resumo Final do negócio conforme a Tabela FIPE")
	assert.Equal(t, "**Resumo Final** do negócio conforme a **Tabela FIPE**", got)
}

func TestFormat_KeywordEmphasisFirstOccurrenceOnly(t *testing.T) {
	got := Format("Tabela FIPE hoje e Tabela FIPE amanhã")
	assert.Equal(t, "**Tabela FIPE** hoje e Tabela FIPE amanhã", got)
}

func TestFormat_CombinedReply(t *testing.T) {
	raw := "Analisei seu caso. Opção 1: vender por 50% da FIPE"
	got := Format(raw)
	assert.Equal(t, "Analisei seu caso.\n\n**Opção 1:** vender por 50% da FIPE", got)
}
