// FILE: internal/client/display/format.go
package display

import (
	"encoding/json"
	"fmt"
	"time"
)

// FormatTime renders a timestamp the way the client shows all times
func FormatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// FormatLastLogin renders an optional last-login timestamp, where nil
// means the account has never logged in
func FormatLastLogin(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return FormatTime(*t)
}

// PrettyPrintJSON prints formatted JSON
func PrettyPrintJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%sError formatting JSON: %s%s\n", Red, err.Error(), Reset)
		return
	}
	fmt.Println(string(data))
}
