package sha256

import (
	stdsha256 "crypto/sha256"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pion/transport/v3/test"
)

func TestState_IndependentSessions(t *testing.T) {
	lim := test.TimeOut(30 * time.Second)
	defer lim.Stop()

	report := test.CheckRoutines(t)
	defer report()

	const sessions = 16

	var wg sync.WaitGroup
	errs := make(chan error, sessions)

	for i := 0; i < sessions; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			message := make([]byte, 500+id*37)
			for j := range message {
				message[j] = byte(id + j)
			}

			s := Initialize()
			for off := 0; off < len(message); off += id + 1 {
				end := off + id + 1
				if end > len(message) {
					end = len(message)
				}
				if err := s.Update(message[off:end]); err != nil {
					errs <- fmt.Errorf("session %d: %w", id, err)
					return
				}
			}
			got, err := s.Finalize()
			if err != nil {
				errs <- fmt.Errorf("session %d: %w", id, err)
				return
			}
			if want := stdsha256.Sum256(message); got != Digest(want) {
				errs <- fmt.Errorf("session %d: got %s want %x", id, got, want)
			}
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
