package summarizer

import (
	"fmt"
	"strings"
)

// maxArticleChars bounds how much article text goes into the prompt so we
// stay under the upstream input limits.
const maxArticleChars = 6000

func buildSummaryPrompt(title, articleText string) string {
	var prompt strings.Builder

	prompt.WriteString(`Please analyze the following article and provide a comprehensive summary using bullet points. Based on the content depth and importance, decide on the optimal number of points (minimum 3, maximum 10). Each bullet point should start with a **bold title** followed by a colon and detailed explanation.

Guidelines:
- For simple articles: 3-5 points
- For complex articles: 6-8 points
- For very comprehensive content: up to 10 points
- Focus on the most important insights, actionable takeaways, and core messages
- Make each point informative and actionable
- Use **bold formatting** only for the titles at the start of each bullet point

Format your response EXACTLY as:
• **Key Point Title**: Detailed explanation of the insight or takeaway
• **Second Point Title**: Detailed explanation of the second insight
• **Additional Point Title**: Continue as needed based on content depth

`)
	prompt.WriteString(fmt.Sprintf("Title: %s\n", title))
	prompt.WriteString(fmt.Sprintf("Article text: %s", truncate(articleText, maxArticleChars)))

	return prompt.String()
}

func buildCondensePrompt(existingSummary string) string {
	var prompt strings.Builder

	prompt.WriteString(`Please create a very concise, condensed version of the following summary. Make it perfect for quick sharing on social media or messaging apps.

Requirements:
- Maximum 3-4 short bullet points
- Each point should be 1-2 sentences maximum
- Keep the most essential information only
- Make it engaging and easy to read
- Use simple language

Original summary to condense:
`)
	prompt.WriteString(existingSummary)
	prompt.WriteString(`

Format as:
• [Concise point 1]
• [Concise point 2]
• [Concise point 3]
• [Concise point 4 if needed]`)

	return prompt.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
