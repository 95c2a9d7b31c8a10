package status

type StatusResponse struct {
	Version            string `json:"version" extensions:"x-order:0"`
	CommitHash         string `json:"commit_hash" extensions:"x-order:1"`
	Environment        string `json:"environment" extensions:"x-order:2"`
	LeaderboardEnabled bool   `json:"leaderboard_enabled" extensions:"x-order:3"`
	Database           string `json:"database" extensions:"x-order:4"`
}

const (
	DatabaseDisabled    = "disabled"
	DatabaseOK          = "ok"
	DatabaseUnavailable = "unavailable"
)
