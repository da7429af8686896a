package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryEmbedsTextVerbatim(t *testing.T) {
	caseText := "A stole B's car.\nB filed an FIR the next day."

	p := Summary(caseText)
	assert.Contains(t, p, caseText)
	assert.Contains(t, p, "summarize the following legal case")
}

func TestContractEmbedsTextVerbatim(t *testing.T) {
	contractText := `The lessee shall pay "rent" of Rs. 10,000 per month.`

	p := Contract(contractText)
	assert.Contains(t, p, contractText)
	assert.Contains(t, p, "key clauses, risks, obligations, and recommendations")
}

func TestSectionsEmbedsTextVerbatim(t *testing.T) {
	caseText := "Cheque issued by the accused bounced twice."

	p := Sections(caseText)
	assert.Contains(t, p, caseText)
	assert.Contains(t, p, "section number and name")
}

func TestBuildersAreDeterministic(t *testing.T) {
	caseText := "The tenant refused to vacate after notice."

	assert.Equal(t, Summary(caseText), Summary(caseText))
	assert.Equal(t, Contract(caseText), Contract(caseText))
	assert.Equal(t, Sections(caseText), Sections(caseText))
}

func TestBuildersAreDistinct(t *testing.T) {
	caseText := "Some case text."

	assert.NotEqual(t, Summary(caseText), Contract(caseText))
	assert.NotEqual(t, Summary(caseText), Sections(caseText))
	assert.NotEqual(t, Contract(caseText), Sections(caseText))
}
