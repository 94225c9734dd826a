package shared

import (
	"net/http"
)

const defaultUserAgent = "ScopariaBot/1.0 (+https://github.com/Crimone/Scoparia)"

type IUserAgent interface {
	AddUserAgent(req *http.Request)
}

type userAgent struct {
	userAgentValue string
}

func NewUserAgent(cfg *Config) IUserAgent {
	uaVal := cfg.UserAgent
	if uaVal == "" {
		uaVal = defaultUserAgent
	}
	return &userAgent{
		userAgentValue: uaVal,
	}
}

func (ua *userAgent) AddUserAgent(req *http.Request) {
	req.Header.Add("User-Agent", ua.userAgentValue)
}
