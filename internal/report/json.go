package report

import (
	"encoding/json"
	"io"

	"github.com/nguyentantai21042004/minutes-flow/internal/pipeline"
)

// JSON writes res as an indented JSON document.
func JSON(w io.Writer, res *pipeline.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
