package domain

import "go.uber.org/atomic"

// questionSeq holds the last question ID handed out in this process.
var questionSeq = atomic.NewInt64(0)

func nextQuestionID() int64 {
	return questionSeq.Inc()
}

