package usecase

import "errors"

// ErrIncompleteInbound はチャットIDまたはコマンドが無い更新に対して返されます。
var ErrIncompleteInbound = errors.New("inbound without chat id or command")
