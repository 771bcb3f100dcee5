package model

import (
	"venue-content-backend/pkg/keycodec"
)

// External renders the page in camelCase, keeping content keys as stored.
func (p *VenuePage) External() (keycodec.Object, error) {
	obj, err := keycodec.EncodeStruct(p)
	if err != nil {
		return nil, err
	}
	content := p.Content
	if content == nil {
		content = map[string]string{}
	}
	return append(obj, keycodec.Field{Key: "content", Value: content}), nil
}
