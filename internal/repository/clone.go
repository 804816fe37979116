package repository

import (
	"maps"
	"slices"

	"github.com/hitoshi/portal/internal/model"
)

// cloneRequest は呼び出し側とストアがデータを共有しないようにコピーを作る。
func cloneRequest(req *model.ServiceRequest) *model.ServiceRequest {
	c := *req
	if req.Category != nil {
		v := *req.Category
		c.Category = &v
	}
	if req.Description != nil {
		v := *req.Description
		c.Description = &v
	}
	c.Fields = maps.Clone(req.Fields)
	return &c
}

func cloneMessage(msg *model.Message) *model.Message {
	c := *msg
	c.Media = slices.Clone(msg.Media)
	return &c
}
