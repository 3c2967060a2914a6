package constant

import "fmt"

// analysisPromptTemplate instructs the model to answer in the exact
// two-section format pkg/citation knows how to parse.
const analysisPromptTemplate = `You are an expert legal assistant. Your task is to provide a clear and structured analysis of the following legal document.
Please perform the following two actions and structure your response exactly as requested, using the specified markdown headers:

### Summary
Provide a concise, easy-to-understand summary of the key arguments, findings, and conclusions in the text.

### Citations Found
List every legal citation or case reference you find in the text, one per line. If no citations are present, you must explicitly write "No citations were found."
---
Here is the document:
%s
---
`

func BuildAnalysisPrompt(documentText string) string {
	return fmt.Sprintf(analysisPromptTemplate, documentText)
}
