package whisper

import (
	"sync"
)

var _ deliveryRecorder = &deliveryRecorderMock{}

type deliveryRecorderMock struct {
	RecordDeliveryFunc func(outcome string)

	calls struct {
		RecordDelivery []struct {
			Outcome string
		}
	}
	lockRecordDelivery sync.RWMutex
}

func (mock *deliveryRecorderMock) RecordDelivery(outcome string) {
	if mock.RecordDeliveryFunc == nil {
		panic("deliveryRecorderMock.RecordDeliveryFunc: method is nil but deliveryRecorder.RecordDelivery was just called")
	}
	callInfo := struct {
		Outcome string
	}{Outcome: outcome}
	mock.lockRecordDelivery.Lock()
	mock.calls.RecordDelivery = append(mock.calls.RecordDelivery, callInfo)
	mock.lockRecordDelivery.Unlock()
	mock.RecordDeliveryFunc(outcome)
}

func (mock *deliveryRecorderMock) RecordDeliveryCalls() []struct {
	Outcome string
} {
	var calls []struct {
		Outcome string
	}
	mock.lockRecordDelivery.RLock()
	calls = mock.calls.RecordDelivery
	mock.lockRecordDelivery.RUnlock()
	return calls
}
