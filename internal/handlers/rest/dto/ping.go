package dto

type PingResponse struct {
	Message     string `json:"message"`
	BusinessDay string `json:"business_day"`
	Timezone    string `json:"timezone"`
}
