package collective

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/rpc"
	"strings"
	"sync"
)

// serviceName is the net/rpc receiver name. Method names are built from it.
const serviceName = "Collective"

// ExchangeArgs carries one rank's message for a step.
type ExchangeArgs struct {
	Rank int
	Msg  Message
}

// AbortArgs carries an abort request.
type AbortArgs struct {
	Rank   int
	Reason string
}

// LeaveArgs announces a graceful exit.
type LeaveArgs struct {
	Rank int
}

// InfoArgs introduces a dialing worker.
type InfoArgs struct {
	Rank int
}

// InfoReply describes the group to a dialing worker.
type InfoReply struct {
	Size int
}

// Ack is the empty-ish reply of Abort and Leave. gob needs an exported field.
type Ack struct {
	OK bool
}

// session is the RPC receiver bound to one connection. It remembers which
// rank spoke on the connection so a dropped connection can abort the group.
type session struct {
	hub *Hub
	ctx context.Context // cancelled when the connection stops reading

	mu   sync.Mutex
	rank int // -1 until Info or the first Exchange
	left bool
}

// Info returns the current group size and binds a valid rank to the
// session, so a worker lost before its first collective still aborts the group.
func (s *session) Info(args *InfoArgs, reply *InfoReply) error {
	reply.Size = s.hub.Size()
	if args.Rank >= 0 && args.Rank < reply.Size {
		s.mu.Lock()
		if s.rank < 0 {
			s.rank = args.Rank
		}
		s.mu.Unlock()
	}

	return nil
}

// Exchange runs one collective step for the calling rank.
func (s *session) Exchange(args *ExchangeArgs, reply *Message) error {
	s.mu.Lock()
	if s.rank < 0 {
		s.rank = args.Rank
	}
	s.mu.Unlock()

	msg, err := s.hub.Exchange(s.ctx, args.Rank, args.Msg)
	if err != nil {
		return err
	}
	*reply = msg

	return nil
}

// Abort aborts the group on behalf of a remote rank.
func (s *session) Abort(args *AbortArgs, reply *Ack) error {
	s.hub.Abort(fmt.Errorf("rank %d: %s", args.Rank, args.Reason))
	reply.OK = true

	return nil
}

// Leave marks the rank as gracefully done.
func (s *session) Leave(args *LeaveArgs, reply *Ack) error {
	s.mu.Lock()
	s.left = true
	s.mu.Unlock()
	s.hub.Leave(args.Rank)
	reply.OK = true

	return nil
}

// dropped is called when the connection closes.
func (s *session) dropped() {
	s.mu.Lock()
	rank, left := s.rank, s.left
	s.mu.Unlock()
	if rank >= 0 && !left {
		s.hub.Abort(fmt.Errorf("rank %d disconnected: %w", rank, ErrProtocol))
	}
}

// Serve accepts worker connections on lis and serves hub over net/rpc until
// ctx ends or lis fails. It closes lis on return.
func Serve(ctx context.Context, lis net.Listener, hub *Hub) error {
	stop := context.AfterFunc(ctx, func() { _ = lis.Close() })
	defer stop()
	defer lis.Close()

	for {
		conn, err := lis.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		go serveConn(hub, conn)
	}
}

func serveConn(hub *Hub, conn net.Conn) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := &session{hub: hub, ctx: ctx, rank: -1}
	srv := rpc.NewServer()
	if err := srv.RegisterName(serviceName, s); err != nil {
		_ = conn.Close()
		return
	}
	// ServeConn waits for in-flight calls before returning, so a peer that
	// vanishes mid-step is noticed on the read side instead.
	srv.ServeConn(&watchedConn{Conn: conn, cancel: cancel})
	s.dropped()
}

// watchedConn cancels its session once reading fails.
type watchedConn struct {
	net.Conn
	cancel context.CancelFunc
}

func (c *watchedConn) Read(p []byte) (int, error) {
	n, err := c.Conn.Read(p)
	if err != nil {
		c.cancel()
	}

	return n, err
}

// rpcLink is the net/rpc link of a remote endpoint.
type rpcLink struct {
	client *rpc.Client
}

// Dial connects to a hub at addr as rank.
func Dial(ctx context.Context, addr string, rank int) (*Endpoint, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	l := &rpcLink{client: rpc.NewClient(conn)}

	var info InfoReply
	if err := l.call(ctx, "Info", &InfoArgs{Rank: rank}, &info); err != nil {
		_ = l.client.Close()
		return nil, err
	}
	if rank < 0 || rank >= info.Size {
		_ = l.client.Close()
		return nil, fmt.Errorf("Dial: rank %d of %d: %w", rank, info.Size, ErrRank)
	}

	return &Endpoint{rank: rank, size: info.Size, link: l}, nil
}

func (l *rpcLink) call(ctx context.Context, method string, args, reply any) error {
	call := l.client.Go(serviceName+"."+method, args, reply, make(chan *rpc.Call, 1))
	select {
	case <-call.Done:
		return decodeRemote(call.Error)
	case <-ctx.Done():
		// The call stays in flight and may still write reply; callers abort
		// the group and must not reuse the endpoint.
		return ctx.Err()
	}
}

func (l *rpcLink) exchange(ctx context.Context, rank int, msg Message) (Message, error) {
	var reply Message
	err := l.call(ctx, "Exchange", &ExchangeArgs{Rank: rank, Msg: msg}, &reply)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			l.abort(rank, ctxErr)
			return Message{}, fmt.Errorf("%w: rank %d: %w", ErrAborted, rank, ctxErr)
		}
		return Message{}, err
	}

	return reply, nil
}

func (l *rpcLink) abort(rank int, cause error) {
	_ = l.client.Call(serviceName+".Abort", &AbortArgs{Rank: rank, Reason: cause.Error()}, &Ack{})
}

func (l *rpcLink) leave(rank int) error {
	err := l.client.Call(serviceName+".Leave", &LeaveArgs{Rank: rank}, &Ack{})

	return errors.Join(decodeRemote(err), l.client.Close())
}

// decodeRemote maps a net/rpc error string back onto the package sentinels
// so callers can keep using errors.Is across the wire.
func decodeRemote(err error) error {
	if err == nil {
		return nil
	}
	var se rpc.ServerError
	if !errors.As(err, &se) {
		return err
	}
	var matched []error
	for _, s := range remoteSentinels {
		if strings.Contains(string(se), s.Error()) {
			matched = append(matched, s)
		}
	}
	if len(matched) == 0 {
		return fmt.Errorf("collective: remote: %s", string(se))
	}

	return fmt.Errorf("collective: remote: %s: %w", string(se), errors.Join(matched...))
}
