/*
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
"License"); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

package proton

import (
	"fmt"

	"github.com/ncau/qpid-proton/amqp"
)

// A fake protocol engine implementing the boundary interfaces. It
// records the commands the adapter issues so tests can assert on them.

type fakeCondition struct{ err *amqp.Error }

func (c fakeCondition) IsSet() bool { return c.err != nil }

func (c fakeCondition) Name() string {
	if c.err == nil {
		return ""
	}
	return c.err.Name
}

func (c fakeCondition) Description() string {
	if c.err == nil {
		return ""
	}
	return c.err.Description
}

func (c fakeCondition) Error() error {
	if c.err == nil {
		return nil
	}
	return *c.err
}

func condition(name, description string) fakeCondition {
	return fakeCondition{&amqp.Error{Name: name, Description: description}}
}

type fakeTransport struct {
	cond fakeCondition
}

func (t *fakeTransport) Condition() Condition { return t.cond }
func (t *fakeTransport) String() string       { return "fake-transport" }

type fakeConnection struct {
	state      State
	remoteCond fakeCondition
	transport  *fakeTransport
	opens      int
	closes     int
}

func newFakeConnection(state State) *fakeConnection {
	return &fakeConnection{state: state, transport: &fakeTransport{}}
}

func (c *fakeConnection) State() State { return c.state }

func (c *fakeConnection) Open() {
	c.opens++
	c.state = c.state&^SLocalUninit | SLocalActive
}

func (c *fakeConnection) Close() {
	c.closes++
	c.state = c.state&^SLocalActive | SLocalClosed
}

func (c *fakeConnection) RemoteCondition() Condition { return c.remoteCond }
func (c *fakeConnection) String() string             { return "fake-connection" }
func (c *fakeConnection) Type() string               { return "connection" }
func (c *fakeConnection) Transport() Transport       { return c.transport }

type fakeSession struct {
	state      State
	remoteCond fakeCondition
	conn       *fakeConnection
	opens      int
	closes     int
}

func newFakeSession(c *fakeConnection, state State) *fakeSession {
	return &fakeSession{state: state, conn: c}
}

func (s *fakeSession) State() State { return s.state }

func (s *fakeSession) Open() {
	s.opens++
	s.state = s.state&^SLocalUninit | SLocalActive
}

func (s *fakeSession) Close() {
	s.closes++
	s.state = s.state&^SLocalActive | SLocalClosed
}

func (s *fakeSession) RemoteCondition() Condition { return s.remoteCond }
func (s *fakeSession) String() string             { return "fake-session" }
func (s *fakeSession) Type() string               { return "session" }
func (s *fakeSession) Connection() Connection     { return s.conn }

type fakeLink struct {
	name       string
	receiver   bool
	state      State
	remoteCond fakeCondition
	sess       *fakeSession
	credit     int
	flows      []int
	opens      int
	closes     int
}

func newFakeLink(s *fakeSession, name string, receiver bool, state State) *fakeLink {
	return &fakeLink{name: name, receiver: receiver, state: state, sess: s}
}

func (l *fakeLink) State() State { return l.state }

func (l *fakeLink) Open() {
	l.opens++
	l.state = l.state&^SLocalUninit | SLocalActive
}

func (l *fakeLink) Close() {
	l.closes++
	l.state = l.state&^SLocalActive | SLocalClosed
}

func (l *fakeLink) RemoteCondition() Condition { return l.remoteCond }
func (l *fakeLink) String() string             { return l.name }

func (l *fakeLink) Type() string {
	if l.receiver {
		return "receiver-link"
	}
	return "sender-link"
}

func (l *fakeLink) Name() string     { return l.name }
func (l *fakeLink) Session() Session { return l.sess }
func (l *fakeLink) IsSender() bool   { return !l.receiver }
func (l *fakeLink) IsReceiver() bool { return l.receiver }
func (l *fakeLink) Credit() int      { return l.credit }

func (l *fakeLink) Flow(delta int) {
	l.flows = append(l.flows, delta)
	if delta > 0 {
		l.credit += delta
	}
}

type fakeDelivery struct {
	link          *fakeLink
	remoteSettled bool
	updated       bool
	readable      bool
	partial       bool
	remote        Disposition
	content       amqp.Message
	decodeErr     error

	localState   Disposition
	localSettled bool
	settles      int
}

func (d *fakeDelivery) Link() Link          { return d.link }
func (d *fakeDelivery) Settled() bool       { return d.remoteSettled }
func (d *fakeDelivery) Updated() bool       { return d.updated }
func (d *fakeDelivery) Readable() bool      { return d.readable }
func (d *fakeDelivery) Partial() bool       { return d.partial }
func (d *fakeDelivery) Remote() Disposition { return d.remote }

func (d *fakeDelivery) Update(state Disposition) { d.localState = state }

func (d *fakeDelivery) Settle() {
	d.settles++
	d.localSettled = true
}

func (d *fakeDelivery) Decode(m *amqp.Message) error {
	if d.decodeErr != nil {
		return d.decodeErr
	}
	m.Clear()
	m.CopyFrom(&d.content)
	return nil
}

// Event builders deriving the secondary references the way an engine would.

func connEvent(t EventType, c *fakeConnection) Event {
	return MakeEvent(t, c, nil, nil, nil, c.transport)
}

func sessEvent(t EventType, s *fakeSession) Event {
	return MakeEvent(t, s.conn, s, nil, nil, s.conn.transport)
}

func linkEvent(t EventType, l *fakeLink) Event {
	return MakeEvent(t, l.sess.conn, l.sess, l, nil, l.sess.conn.transport)
}

func deliveryEvent(d *fakeDelivery) Event {
	l := d.link
	return MakeEvent(EDelivery, l.sess.conn, l.sess, l, d, l.sess.conn.transport)
}

// endpoints returns a connected fake endpoint chain in the given states.
func endpoints(connState, sessState, linkState State, receiver bool) (*fakeConnection, *fakeSession, *fakeLink) {
	c := newFakeConnection(connState)
	s := newFakeSession(c, sessState)
	l := newFakeLink(s, "l1", receiver, linkState)
	return c, s, l
}

// recorder records every callback it receives, in order.
type recorder struct {
	DefaultMessagingHandler
	calls    []string
	messages []*amqp.Message
	bodies   []interface{}
}

func (r *recorder) record(name string) { r.calls = append(r.calls, name) }

func (r *recorder) OnStart(e MessagingEvent, c *Container) { r.record("start") }
func (r *recorder) OnSendable(e MessagingEvent, l Link) { r.record("sendable") }
func (r *recorder) OnTimer(e MessagingEvent, c *Container) { r.record("timer") }
func (r *recorder) OnDeliveryAccept(e MessagingEvent, d Delivery) { r.record("accept") }
func (r *recorder) OnDeliveryReject(e MessagingEvent, d Delivery) { r.record("reject") }
func (r *recorder) OnDeliveryRelease(e MessagingEvent, d Delivery) { r.record("release") }
func (r *recorder) OnDeliverySettle(e MessagingEvent, d Delivery) { r.record("settle") }
func (r *recorder) OnLinkOpen(e MessagingEvent, l Link) { r.record("link-open") }
func (r *recorder) OnLinkClose(e MessagingEvent, l Link) { r.record("link-close") }
func (r *recorder) OnLinkError(e MessagingEvent, l Link) { r.record("link-error") }
func (r *recorder) OnSessionOpen(e MessagingEvent, s Session) { r.record("session-open") }
func (r *recorder) OnSessionClose(e MessagingEvent, s Session) { r.record("session-close") }
func (r *recorder) OnSessionError(e MessagingEvent, s Session) { r.record("session-error") }
func (r *recorder) OnConnectionOpen(e MessagingEvent, c Connection) { r.record("connection-open") }
func (r *recorder) OnConnectionClose(e MessagingEvent, c Connection) { r.record("connection-close") }
func (r *recorder) OnConnectionError(e MessagingEvent, c Connection) { r.record("connection-error") }
func (r *recorder) OnTransportClose(e MessagingEvent, t Transport) { r.record("transport-close") }
func (r *recorder) OnTransportError(e MessagingEvent, t Transport) { r.record("transport-error") }

func (r *recorder) OnMessage(e MessagingEvent, d Delivery, m *amqp.Message) {
	r.record(fmt.Sprintf("message:%v", m.Body))
	r.messages = append(r.messages, m)
	r.bodies = append(r.bodies, m.Body)
}
