package types

// PubSubMessage is the envelope Pub/Sub wraps around event payloads
// delivered to CloudEvent-triggered functions.
type PubSubMessage struct {
	Message struct {
		Data       []byte            `json:"data"`
		Attributes map[string]string `json:"attributes"`
	} `json:"message"`
}
