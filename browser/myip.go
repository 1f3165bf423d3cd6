package browser

import (
	"encoding/json"
	"errors"
	"strings"

	. "github.com/Nikita55612/BrowserBridge/internal/logging"
)

// MyIPEndpoint is the IP lookup service interrogated by MyIP.
const MyIPEndpoint = "https://api.myip.com/"

// MyIP is the session's network identity as the outside world sees it.
type MyIP struct {
	IP          string `json:"ip"`
	Country     string `json:"country"`
	CountryCode string `json:"cc"`
}

// MyIP opens the lookup endpoint on a throwaway page and parses the
// reported identity. Useful to verify that a proxy switch actually took.
// An absent or unparseable body yields *SerializationError.
func (s *Session) MyIP() (*MyIP, error) {
	page, err := s.Open(MyIPEndpoint)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := page.Close(); err != nil {
			L_debug("browser: myip page close failed", "error", err)
		}
	}()

	body, err := page.Timeout(s.cfg.RequestTimeout).Element("body")
	if err != nil {
		return nil, err
	}
	text, err := body.Text()
	if err != nil {
		return nil, err
	}
	return parseMyIP(text)
}

func parseMyIP(body string) (*MyIP, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, &SerializationError{Err: errors.New("empty response body")}
	}
	var ip MyIP
	if err := json.Unmarshal([]byte(body), &ip); err != nil {
		return nil, &SerializationError{Err: err}
	}
	return &ip, nil
}
