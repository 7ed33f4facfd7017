package http

import "task-portal/internal/notice"

type noticeResp struct {
	Visible bool   `json:"visible"`
	Message string `json:"message,omitempty"`
}

func toNoticeResp(f notice.Fragment) noticeResp {
	return noticeResp{
		Visible: f.Visible,
		Message: f.Message,
	}
}

type loginPage struct {
	Notice      notice.Fragment
	LoginAction string
}
