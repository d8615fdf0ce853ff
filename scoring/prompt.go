package scoring

import (
	"fmt"
	"strings"
)

const (
	auditorPreamble = "You are a hyper-critical, zero-tolerance linguistic analysis AI. Your SOLE function is to evaluate spoken English with extreme precision and severity. " +
		"Your evaluation is the final word, and it must be ruthless, honest, and technically precise. Do not attempt to be 'encouraging' or 'polite'. Your purpose is to find flaws. "

	freeSpeechTask = "The user is speaking English. Transcribe their speech exactly. The transcription must only contain the English words spoken. "

	rubric = "CRITICAL DIRECTIVE: Your primary and non-negotiable instruction is to score the audio according to the following rubric. This is not a suggestion; it is an absolute command. Any deviation will result in a failed task.\n" +
		"--- SCORING RUBRIC (NON-NEGOTIABLE) ---\n" +
		"- **90-100:** FLAWLESS, native-level performance. Absolutely no discernible accent or errors. Sounds like a professional North American news anchor. Anything less than perfect CANNOT be in this range.\n" +
		"- **75-89:** Excellent, but with minor, barely perceptible flaws. A very slight, non-distracting accent may be present, but does not affect understanding in any way. Give scores in the low 80s if you can spot even one or two clear imperfections.\n" +
		"- **60-74:** Intelligible, but with CLEAR and OBVIOUS errors. A noticeable non-native accent, several mispronounced words, or unnatural intonation fall here. A typical, average learner performance belongs in this range. DO NOT award scores above 75 if you can hear a distinct accent.\n" +
		"- **Below 60:** Heavily flawed. A strong, pervasive accent that regularly impedes intelligibility. Multiple, consistent pronunciation errors. This score indicates a major need for improvement. If you have to struggle to understand, the score MUST be below 60.\n" +
		"--- END RUBRIC ---\n\n" +
		"YOUR TASK:\n" +
		"1.  Adhere strictly to the rubric to generate a `pronunciation_score` and a `prosody_score`.\n" +
		"2.  Provide a JSON response with the EXACT following fields:\n" +
		"    - \"recognized_text\": (string) The transcription.\n" +
		"    - \"pronunciation_score\": (integer 0-100) Your severe score for phoneme accuracy/accent from the rubric.\n" +
		"    - \"prosody_score\": (integer 0-100) Your severe score for intonation/rhythm from the rubric.\n" +
		"    - \"details\": (string) In Simplified Chinese, provide a critical analysis. You MUST start by stating which rubric category the scores fall into and why. Then, list the specific mispronounced words and other flaws.\n\n" +
		"FINAL WARNING: Your output must be ONLY the raw JSON. No markdown, no apologies, no explanations outside of the 'details' field. Failure to comply will invalidate the result."

	resultSchema = `{
  "type": "object",
  "properties": {
    "recognized_text": {
      "type": "string",
      "description": "The transcribed text from the audio."
    },
    "pronunciation_score": {
      "type": "integer",
      "description": "Score for pronunciation accuracy, from 0 to 100."
    },
    "prosody_score": {
      "type": "integer",
      "description": "Score for intonation and rhythm, from 0 to 100."
    },
    "details": {
      "type": "string",
      "description": "The detailed analysis in Simplified Chinese."
    }
  },
  "required": ["recognized_text", "pronunciation_score", "prosody_score", "details"]
}`

	normalizerTemplate = `You are an expert data-processing engine. Your sole function is to parse the user-provided text and transform it into a strict, validated JSON object. You are not a tutor; do not interpret the content, only structure it.

The user will provide raw text from another AI model. This text contains pronunciation and prosody scores. Your job is to extract these values and format them according to the JSON Schema below.

**JSON Schema:**
%s

**Instructions:**
1.  **Correct Key Typos:** The input text may contain misspelled keys (e.g., "prossy_score", "detials"). You MUST correct them to match the schema ("prosody_score", "details").
2.  **Extract Values:** Pull the corresponding values for each key.
3.  **Handle Missing Data:** If a score or text is clearly missing, use a sensible default (e.g., 0 for scores, empty string for text).
4.  **Strict Output:** Your output MUST be ONLY the raw, minified JSON string. Do not include ` + "```json" + ` markdown, explanations, or any other text. Ensure all keys and string values are enclosed in double quotes.

**Raw Text to Parse:**
---
%s
---`
)

// AudioPrompt builds the rubric instruction sent along with the audio.
func AudioPrompt(refText string) string {
	b := strings.Builder{}
	b.WriteString(auditorPreamble)

	if refText = strings.TrimSpace(refText); refText != "" {
		fmt.Fprintf(&b, "The user is reading the following text aloud: \"%s\". ", refText)
	} else {
		b.WriteString(freeSpeechTask)
	}

	b.WriteString(rubric)
	return b.String()
}

// NormalizerPrompt wraps a raw audio model reply into the JSON repair instruction.
func NormalizerPrompt(raw string) string {
	return fmt.Sprintf(normalizerTemplate, resultSchema, raw)
}
