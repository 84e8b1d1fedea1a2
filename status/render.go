package status

import "encoding/json"

type jsonVersion struct {
	Name     string `json:"name"`
	Protocol int32  `json:"protocol"`
}

type jsonSample struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type jsonPlayers struct {
	Max    int          `json:"max"`
	Online int          `json:"online"`
	Sample []jsonSample `json:"sample,omitempty"`
}

type jsonStatus struct {
	Version            jsonVersion     `json:"version"`
	Players            jsonPlayers     `json:"players"`
	Description        json.RawMessage `json:"description"`
	EnforcesSecureChat *bool           `json:"enforcesSecureChat,omitempty"`
	Favicon            string          `json:"favicon,omitempty"`
}

// Build renders s as the status response JSON, gating the description's
// color output on s.DescriptionProtocol (see text.HexColorProtocol).
func (s *Snapshot) Build() (string, error) {
	desc := s.Description.Clone()
	desc.SetProtocol(int(s.DescriptionProtocol))
	descJSON, err := desc.Render()
	if err != nil {
		return "", err
	}

	sample := make([]jsonSample, 0, len(s.Sample))
	for _, entry := range s.Sample {
		sample = append(sample, jsonSample{Name: entry.Name, ID: entry.UUID})
	}

	payload := jsonStatus{
		Version: jsonVersion{Name: s.VersionName, Protocol: s.Protocol},
		Players: jsonPlayers{
			Max:    s.MaxPlayers,
			Online: s.OnlinePlayers,
			Sample: sample,
		},
		Description:        json.RawMessage(descJSON),
		EnforcesSecureChat: s.EnforcesSecureChat,
		Favicon:            s.Favicon,
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
