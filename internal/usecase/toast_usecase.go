package usecase

import (
	"menfes/internal/domain/entity"
)

// ToastUsecase is the bounded-concurrency toast display queue. Requests are
// admitted strictly FIFO, at most three visible at once; a freed slot
// immediately admits the next pending request.
type ToastUsecase interface {
	// Enqueue appends a request and attempts admission. A request with no
	// message renders an empty-body toast; it is accepted, not rejected.
	Enqueue(req entity.NotificationRequest)

	// EnqueueInline appends a request rendered in the inline popup variant
	// used for foreground push messages, with the shorter dwell.
	EnqueueInline(req entity.NotificationRequest)
}
