package cache

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/config"
)

// fakeRedis answers the handful of RESP commands RedisStore sends
type fakeRedis struct {
	ln   net.Listener
	mu   sync.Mutex
	data map[string]string
}

func newFakeRedis(t *testing.T) *fakeRedis {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	f := &fakeRedis{ln: ln, data: make(map[string]string)}
	go f.serve()
	t.Cleanup(func() { ln.Close() })
	return f
}

func (f *fakeRedis) addr() string { return f.ln.Addr().String() }

func (f *fakeRedis) keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.data))
	for k := range f.data {
		out = append(out, k)
	}
	return out
}

func (f *fakeRedis) serve() {
	for {
		conn, err := f.ln.Accept()
		if err != nil {
			return
		}
		go f.handle(conn)
	}
}

func (f *fakeRedis) handle(conn net.Conn) {
	defer conn.Close()
	r := bufio.NewReader(conn)
	for {
		args, err := readCommand(r)
		if err != nil {
			return
		}
		if _, err := io.WriteString(conn, f.reply(args)); err != nil {
			return
		}
	}
}

func (f *fakeRedis) reply(args []string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch strings.ToUpper(args[0]) {
	case "PING":
		return "+PONG\r\n"
	case "GET":
		v, ok := f.data[args[1]]
		if !ok {
			return "$-1\r\n"
		}
		return fmt.Sprintf("$%d\r\n%s\r\n", len(v), v)
	case "SET":
		f.data[args[1]] = args[2]
		return "+OK\r\n"
	case "DEL":
		n := 0
		for _, k := range args[1:] {
			if _, ok := f.data[k]; ok {
				delete(f.data, k)
				n++
			}
		}
		return fmt.Sprintf(":%d\r\n", n)
	case "QUIT":
		return "+OK\r\n"
	default:
		return "-ERR unknown command '" + args[0] + "'\r\n"
	}
}

func readCommand(r *bufio.Reader) ([]string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(line, "*") {
		return nil, fmt.Errorf("unexpected line %q", line)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line[1:]))
	if err != nil || n < 1 {
		return nil, fmt.Errorf("bad array header %q", line)
	}
	args := make([]string, 0, n)
	for i := 0; i < n; i++ {
		header, err := r.ReadString('\n')
		if err != nil {
			return nil, err
		}
		size, err := strconv.Atoi(strings.TrimSpace(header[1:]))
		if err != nil {
			return nil, err
		}
		buf := make([]byte, size+2)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		args = append(args, string(buf[:size]))
	}
	return args, nil
}

func newTestRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:            addr,
		Protocol:        2,
		DisableIdentity: true,
		MaxRetries:      -1,
		DialTimeout:     time.Second,
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
	})
}

func TestRedisStore_MissSetGetDelete(t *testing.T) {
	ctx := context.Background()
	srv := newFakeRedis(t)
	rs := NewRedisStoreFromClient(newTestRedisClient(srv.addr()))
	defer rs.Close()

	v, ok, err := rs.Get(ctx, "report:abc")
	if err != nil {
		t.Fatalf("a missing key must be a miss, not an error: %v", err)
	}
	if ok || v != "" {
		t.Fatalf("expected miss, got %q %v", v, ok)
	}

	if err := rs.Set(ctx, "report:abc", `{"clarity":80}`, time.Hour); err != nil {
		t.Fatalf("set: %v", err)
	}
	if keys := srv.keys(); len(keys) != 1 || keys[0] != "interview:report:abc" {
		t.Fatalf("expected prefixed key, got %v", keys)
	}

	v, ok, err = rs.Get(ctx, "report:abc")
	if err != nil || !ok || v != `{"clarity":80}` {
		t.Fatalf("expected hit, got %q %v %v", v, ok, err)
	}

	if err := rs.Delete(ctx, "report:abc"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := rs.Get(ctx, "report:abc"); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestRedisStore_ConnectionErrorIsReported(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	rs := NewRedisStoreFromClient(newTestRedisClient(addr))
	defer rs.Close()

	_, ok, err := rs.Get(context.Background(), "k")
	if err == nil || ok {
		t.Fatalf("expected an error from an unreachable server, got ok=%v err=%v", ok, err)
	}
	if !strings.Contains(err.Error(), "redis get") {
		t.Fatalf("unexpected error %v", err)
	}
	if err := rs.Set(context.Background(), "k", "v", time.Minute); err == nil {
		t.Fatalf("expected set to fail")
	}
}

func TestNewRedisClient(t *testing.T) {
	srv := newFakeRedis(t)
	client, err := NewRedisClient(context.Background(), &config.RedisConfig{Addr: srv.addr()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	client.Close()

	ln, _ := net.Listen("tcp", "127.0.0.1:0")
	addr := ln.Addr().String()
	ln.Close()
	if _, err := NewRedisClient(context.Background(), &config.RedisConfig{Addr: addr}); err == nil {
		t.Fatalf("expected ping failure for unreachable server")
	}
}
