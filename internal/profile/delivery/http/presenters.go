package http

import "task-portal/internal/model"

type profileResp struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

func toProfileResp(p model.UserProfile) profileResp {
	return profileResp{
		ID:       p.ID,
		FullName: p.FullName,
		Role:     p.Role.String(),
	}
}
