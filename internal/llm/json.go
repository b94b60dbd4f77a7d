package llm

import "strings"

// ExtractJSON strips a surrounding markdown code fence, which chat models
// add even when told not to, and trims to the outermost JSON value.
func ExtractJSON(reply string) string {
	reply = strings.TrimSpace(reply)
	if strings.HasPrefix(reply, "```") {
		reply = strings.TrimPrefix(reply, "```json")
		reply = strings.TrimPrefix(reply, "```")
		reply = strings.TrimSuffix(strings.TrimSpace(reply), "```")
	}
	objStart := strings.Index(reply, "{")
	arrStart := strings.Index(reply, "[")
	if arrStart >= 0 && (objStart < 0 || arrStart < objStart) {
		if end := strings.LastIndex(reply, "]"); end > arrStart {
			return reply[arrStart : end+1]
		}
	} else if objStart >= 0 {
		if end := strings.LastIndex(reply, "}"); end > objStart {
			return reply[objStart : end+1]
		}
	}
	return reply
}
