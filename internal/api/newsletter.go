package api

// swagger:model api.SubscribeRequest
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

// swagger:model api.UpdateSubscriberRequest
type UpdateSubscriberRequest struct {
	Status string `json:"status" validate:"required,oneof=active unsubscribed"`
}

// swagger:model api.SubscribeResponse
type SubscribeResponse struct {
	Subscribed bool   `json:"subscribed"`
	Message    string `json:"message,omitempty" example:"already subscribed"`
}
