package connection

import (
	"encoding/json"
	"testing"
)

func TestMessageRoundTrip(t *testing.T) {
	msg := NewMessage[RespSessionId](CodeSessionID)
	msg.AddPayload(RespSessionId{SessionID: "abc"})

	b, err := json.Marshal(msg)
	if err != nil {
		t.Fatal(err)
	}

	var decoded Message[RespSessionId]
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatal(err)
	}

	if decoded.Code != CodeSessionID {
		t.Fatalf("expected code: %d\t got: %d", CodeSessionID, decoded.Code)
	}
	if decoded.Payload.SessionID != "abc" {
		t.Fatalf("expected session id: abc\t got: %s", decoded.Payload.SessionID)
	}
	if decoded.Error != nil {
		t.Fatalf("expected no error\t got: %+v", decoded.Error)
	}
}

func TestMessageAddError(t *testing.T) {
	msg := NewMessage[NoPayload](CodeInvalidSignal)
	msg.AddError("some details", "short message")

	if msg.Error == nil {
		t.Fatal("expected error to be set")
	}
	if msg.Error.ErrorDetails != "some details" || msg.Error.Message != "short message" {
		t.Fatalf("unexpected error fields: %+v", msg.Error)
	}
}
