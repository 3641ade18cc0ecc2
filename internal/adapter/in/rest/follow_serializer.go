package rest

import (
	"bytes"
	"encoding/json"
	"strconv"

	"yatube/internal/model"
	"yatube/internal/service"
)

type followResponse struct {
	ID        int64  `json:"id"`
	User      string `json:"user"`
	Following string `json:"following"`
}

func renderFollow(f model.Follow) followResponse {
	return followResponse{ID: f.ID, User: f.User, Following: f.Following}
}

func renderFollows(list []model.Follow) []followResponse {
	out := make([]followResponse, 0, len(list))
	for _, f := range list {
		out = append(out, renderFollow(f))
	}
	return out
}

// createFollowRequest takes "following" as a username or a numeric user id.
func createFollowRequest(body rawBody, userID int64) (service.CreateFollowRequest, error) {
	raw, ok := body.fields["following"]
	if !ok || isNull(raw) {
		return service.CreateFollowRequest{}, service.NewValidationError("following", service.MsgRequired)
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return service.CreateFollowRequest{}, service.NewValidationError("following", "Invalid value.")
	}

	ref := service.UserRef{}
	switch t := v.(type) {
	case string:
		if t == "" {
			return service.CreateFollowRequest{}, service.NewValidationError("following", service.MsgBlank)
		}
		ref.Username = t
	case json.Number:
		id, err := strconv.ParseInt(t.String(), 10, 64)
		if err != nil || id <= 0 {
			return service.CreateFollowRequest{}, service.NewValidationError("following", "Invalid value.")
		}
		ref.ID = id
	default:
		return service.CreateFollowRequest{}, service.NewValidationError("following", "Invalid value.")
	}

	return service.CreateFollowRequest{UserID: userID, Following: ref}, nil
}
