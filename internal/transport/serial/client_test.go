// internal/transport/serial/client_test.go
package serial

import "testing"

func TestNew_RequiresDevice(t *testing.T) {
	if _, err := New(Config{BaudRate: 9600}); err == nil {
		t.Fatalf("New(empty device) err=nil, want error")
	}
}
