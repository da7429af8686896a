// Package prompt builds the fixed instruction strings sent to the AI gateway.
// All builders are pure: the caller's text is embedded verbatim and no
// sanitization is applied.
package prompt

import "fmt"

const summaryTemplate = `You are a legal assistant trained in Indian law.
Please summarize the following legal case clearly and concisely.
Mention the issue, facts, important sections involved (IPC/CrPC/Constitution), and conclusion in bullet points if possible.

Case Text:
"%s"
`

const contractTemplate = `You are a legal assistant specialized in Indian law.
Analyze the following contract text and provide a concise summary highlighting key clauses, risks, obligations, and recommendations.

Contract Text:
"%s"
`

const sectionsTemplate = `You are a legal assistant AI trained in Indian law.
Given the following case details, identify the most relevant legal sections (IPC, CrPC, Contract Act, etc.) that apply.
Mention the section number and name, and explain briefly why it applies.

Case:
%s

Respond in bullet points.
`

// Summary wraps a case description in the case-summarization instruction.
func Summary(caseText string) string {
	return fmt.Sprintf(summaryTemplate, caseText)
}

// Contract wraps contract text in the clause/risk/obligation analysis instruction.
func Contract(contractText string) string {
	return fmt.Sprintf(contractTemplate, contractText)
}

// Sections wraps a case description in the statutory-section recommendation instruction.
func Sections(caseText string) string {
	return fmt.Sprintf(sectionsTemplate, caseText)
}
