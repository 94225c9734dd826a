package dto

type Subscriber struct {
	UserId       int      `json:"user_id"`
	Username     string   `json:"username"`
	Email        string   `json:"email,omitempty"`
	PushUrls     []string `json:"push_urls,omitempty"`
	Timezone     string   `json:"timezone"`
	MentionLevel string   `json:"mention_level"`
	EnablePM     bool     `json:"enable_pm"`
	EnableEmail  bool     `json:"enable_email"`
	EnablePush   bool     `json:"enable_push"`
}

type CycleStarted struct {
	Status string `json:"status"`
}

type SyncResult struct {
	Status string `json:"status"`
}
