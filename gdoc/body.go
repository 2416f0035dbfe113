package gdoc

import (
	"strings"

	"showlog/youtube"
)

// BuildBody assembles the plain-text document for a show recap. The layout
// is a header line followed by four fixed sections:
//
//	<date> | <promotion> | <show>
//	--- PLAY BY PLAY ANALYSIS ---
//	--- YOUR ANGLE ---
//	--- HIGHLIGHT TRANSCRIPTS ---
//	--- TRANSCRIPT SUMMARY ---
//
// Failed transcripts stay in the document inline: the highlight section
// carries a "Transcript missing" line per failure and the summary lists
// every video with its OK/FAILED status, so a partial batch still produces
// a complete, reviewable document.
func BuildBody(meta ShowMetadata, recapText, personalNotes string, results []youtube.TranscriptResult) string {
	var b strings.Builder

	b.WriteString(meta.EventDate + " | " + meta.Promotion + " | " + meta.ShowName + "\n\n")

	b.WriteString("--- PLAY BY PLAY ANALYSIS ---\n")
	b.WriteString(strings.TrimSpace(recapText) + "\n\n")

	b.WriteString("--- YOUR ANGLE ---\n")
	b.WriteString(strings.TrimSpace(personalNotes) + "\n\n")

	transcriptLines := []string{"--- HIGHLIGHT TRANSCRIPTS ---"}
	for _, result := range results {
		if result.Success && result.Text != "" {
			transcriptLines = append(transcriptLines,
				"[Video ID: "+result.VideoID+"]\n"+strings.TrimSpace(result.Text)+"\n")
		} else {
			transcriptLines = append(transcriptLines,
				"[Video ID: "+result.VideoID+"] Transcript missing ("+result.Error+").\n")
		}
	}
	b.WriteString(strings.TrimSpace(strings.Join(transcriptLines, "\n")) + "\n\n")

	summaryLines := []string{"--- TRANSCRIPT SUMMARY ---"}
	for _, result := range results {
		status, detail := "OK", "ready"
		if !result.Success {
			status = "FAILED"
			detail = result.Error
			if detail == "" {
				detail = "unknown error"
			}
		}
		summaryLines = append(summaryLines, "- "+result.VideoID+": "+status+" ("+detail+")")
	}
	b.WriteString(strings.Join(summaryLines, "\n"))

	return b.String()
}
