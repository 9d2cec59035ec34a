package txmanager

import "errors"

// ErrTransaction возвращается, когда не удалось начать или зафиксировать транзакцию
var ErrTransaction = errors.New("txmanager: transaction error")
