package formstore

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/yanqian/convertia/internal/domain/form"
)

// encodeSession packs a session into the compact wire form kept in Valkey.
func encodeSession(session form.Session) ([]byte, error) {
	return msgpack.Marshal(&session)
}

func decodeSession(data []byte) (form.Session, error) {
	var session form.Session
	if err := msgpack.Unmarshal(data, &session); err != nil {
		return form.Session{}, err
	}
	return session, nil
}
