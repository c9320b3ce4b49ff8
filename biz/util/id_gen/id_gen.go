// Package id_gen produces request log ids.
package id_gen

import (
	"os"
	"strconv"
	"strings"
	"time"

	"userhub/be/biz/util/ip"

	"github.com/bytedance/gopkg/lang/fastrand"
)

func init() {
	idgen = NewIDGenerator(10)
}

func NewID() string {
	return idgen.NewID()
}

var idgen *IDGenerator

// IDGenerator prefills a buffered pool from a background goroutine.
type IDGenerator struct {
	pool <-chan string
	stop chan any
}

func NewIDGenerator(maxSize int) *IDGenerator {
	stop := make(chan any)
	return &IDGenerator{
		pool: newPool(maxSize, stop),
		stop: stop,
	}
}

func (idgen *IDGenerator) Stop() {
	select {
	case <-idgen.stop:
	default:
		close(idgen.stop)
	}
}

// NewID returns "" once the generator is stopped and the pool is drained.
func (idgen *IDGenerator) NewID() string {
	return <-idgen.pool
}

func newPool(size int, stop chan any) <-chan string {
	pool := make(chan string, size)
	host := ip.IPv4Hex()
	pid := strconv.FormatUint(uint64(os.Getpid()), 10)

	go func() {
		defer close(pool)
		for {
			sb := strings.Builder{}
			sb.WriteString(strconv.FormatUint(uint64(time.Now().UnixMilli()), 36))
			sb.WriteString(host)
			sb.WriteString(pid)
			sb.WriteString(strconv.FormatUint(fastrand.Uint64(), 36))

			select {
			case <-stop:
				return
			case pool <- sb.String():
			}
		}
	}()

	return pool
}
