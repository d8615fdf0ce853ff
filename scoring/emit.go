package scoring

import (
	"bufio"
	"encoding/json"
	"io"
	"log"
)

const fallbackLine = `{"status":"error","message":"Failed to encode result."}` + "\n"

// Emit writes payload as a single newline-terminated JSON line and flushes it.
func Emit(w io.Writer, payload any) error {
	bw := bufio.NewWriter(w)

	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		log.Println("encode result error:", err)
		if _, err := bw.WriteString(fallbackLine); err != nil {
			return err
		}
	}

	return bw.Flush()
}
