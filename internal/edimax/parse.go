package edimax

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// cmdResponse holds everything extractable from a reply: the direct text
// of the CMD element (set/status echoes) and the text of each leaf element
// nested below it (state and metering reads).
type cmdResponse struct {
	text   string
	leaves map[string]string
}

// value prefers the direct CMD text when present, which is how the device
// echoes OK/FAILED, and falls back to the named leaf element.
func (r *cmdResponse) value(leaf string) string {
	if r.text != "" {
		return r.text
	}
	return r.leaves[leaf]
}

func parseCommandResponse(raw []byte) (*cmdResponse, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.CharsetReader = charset.NewReaderLabel

	out := &cmdResponse{leaves: map[string]string{}}
	foundCmd := false
	inCmd := false
	depth := 0
	var current string

	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, &ProtocolError{Reason: "malformed response"}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if !inCmd {
				if t.Name.Local == "CMD" {
					inCmd, foundCmd = true, true
					depth = 0
				}
				continue
			}
			depth++
			current = t.Name.Local
		case xml.EndElement:
			if !inCmd {
				continue
			}
			if depth == 0 {
				inCmd = false
				continue
			}
			depth--
			current = ""
		case xml.CharData:
			if !inCmd {
				continue
			}
			if depth == 0 {
				out.text += string(t)
			} else if current != "" {
				out.leaves[current] += string(t)
			}
		}
	}
	if !foundCmd {
		return nil, &ProtocolError{Reason: "malformed response"}
	}

	out.text = strings.TrimSpace(out.text)
	for k, v := range out.leaves {
		out.leaves[k] = strings.TrimSpace(v)
	}
	return out, nil
}
