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

	"go.uber.org/zap"
)

// endpointDelegator captures the common open/close pattern for the
// three endpoint kinds: on remote open, fire the error event if the
// remote supplied a condition, fire the open event, then mirror the
// open locally if the local end never took initiative. On remote close,
// fire the error event if a condition is set, fire the close event,
// then always reciprocate the close.
type endpointDelegator struct {
	remoteOpen, remoteClose EventType
	open, close, error      MessagingEventType
	endpoint                func(Event) Endpoint
	delegator               *MessagingAdapter
}

// HandleEvent handles a remote open/close event for an endpoint in a generic way.
func (d endpointDelegator) HandleEvent(e Event) {
	endpoint := d.endpoint(e)

	switch e.Type() {

	case d.remoteOpen:
		if endpoint.RemoteCondition().IsSet() {
			d.delegator.fire(d.error, e)
		}
		d.delegator.fire(d.open, e)
		if endpoint.State().LocalUninit() {
			endpoint.Open()
		}

	case d.remoteClose:
		if endpoint.RemoteCondition().IsSet() {
			d.delegator.fire(d.error, e)
		}
		d.delegator.fire(d.close, e)
		endpoint.Close()

	default:
		// We shouldn't be called with any other event type.
		panic(fmt.Errorf("internal error, not a remote open/close event: %s", e))
	}
}

// MessagingAdapter implements EventHandler and delegates to a
// MessagingHandler. It classifies each raw engine event, invokes the
// matching handler method and applies the standard messaging policies
// as side effects: receiver credit top-up, auto-accept of incoming
// messages, auto-settle of outgoing deliveries and endpoint lifecycle
// mirroring.
//
// The exported fields are the per-link policy defaults. They are read
// when a link's context is first created, so modify them before events
// for that link are dispatched. Per-link overrides are available via
// LinkContext().
//
// A MessagingAdapter serves a single connection and must only be called
// from that connection's event-processing goroutine. It holds no locks:
// the engine guarantees events for one connection are never dispatched
// concurrently.
type MessagingAdapter struct {
	mhandler                  MessagingHandler
	connection, session, link endpointDelegator
	links                     map[Link]*LinkContext
	connections               map[Connection]*ConnectionContext

	// Container, if set, is passed to OnStart and OnTimer and supplies
	// the link defaults used when a link is auto-opened on remote
	// request. If nil, MStart and MTimer events are not delivered.
	Container *Container

	// CreditWindow (default 10) is the credit window for new receiver
	// link contexts. Zero disables automatic credit top-up, the
	// application manages credit itself.
	CreditWindow int
	// AutoAccept (default true) automatically accepts and settles
	// incoming messages after OnMessage returns, unless the handler
	// already settled them.
	AutoAccept bool
	// AutoSettle (default true) automatically settles outgoing
	// deliveries once the remote outcome is known.
	AutoSettle bool
}

// NewMessagingAdapter creates an adapter delegating to h.
func NewMessagingAdapter(h MessagingHandler) *MessagingAdapter {
	a := &MessagingAdapter{
		mhandler:     h,
		links:        make(map[Link]*LinkContext),
		connections:  make(map[Connection]*ConnectionContext),
		CreditWindow: 10,
		AutoAccept:   true,
		AutoSettle:   true,
	}
	a.connection = endpointDelegator{
		EConnectionRemoteOpen, EConnectionRemoteClose,
		MConnectionOpen, MConnectionClose, MConnectionError,
		func(e Event) Endpoint { return e.Connection() },
		a,
	}
	a.session = endpointDelegator{
		ESessionRemoteOpen, ESessionRemoteClose,
		MSessionOpen, MSessionClose, MSessionError,
		func(e Event) Endpoint { return e.Session() },
		a,
	}
	a.link = endpointDelegator{
		ELinkRemoteOpen, ELinkRemoteClose,
		MLinkOpen, MLinkClose, MLinkError,
		func(e Event) Endpoint { return e.Link() },
		a,
	}
	return a
}

// fire invokes the handler method for a messaging event type. MMessage
// is not routed here, it needs the decoded message and is dispatched
// directly by incoming().
func (a *MessagingAdapter) fire(t MessagingEventType, e Event) {
	Logger().Debug("messaging event",
		zap.Stringer("type", t),
		zap.Stringer("raw", e.Type()))
	me := MessagingEvent{t, e}
	switch t {
	case MStart:
		a.mhandler.OnStart(me, a.Container)
	case MSendable:
		a.mhandler.OnSendable(me, e.Link())
	case MDeliveryAccept:
		a.mhandler.OnDeliveryAccept(me, e.Delivery())
	case MDeliveryReject:
		a.mhandler.OnDeliveryReject(me, e.Delivery())
	case MDeliveryRelease:
		a.mhandler.OnDeliveryRelease(me, e.Delivery())
	case MDeliverySettle:
		a.mhandler.OnDeliverySettle(me, e.Delivery())
	case MLinkOpen:
		a.mhandler.OnLinkOpen(me, e.Link())
	case MLinkClose:
		a.mhandler.OnLinkClose(me, e.Link())
	case MLinkError:
		a.mhandler.OnLinkError(me, e.Link())
	case MSessionOpen:
		a.mhandler.OnSessionOpen(me, e.Session())
	case MSessionClose:
		a.mhandler.OnSessionClose(me, e.Session())
	case MSessionError:
		a.mhandler.OnSessionError(me, e.Session())
	case MConnectionOpen:
		a.mhandler.OnConnectionOpen(me, e.Connection())
	case MConnectionClose:
		a.mhandler.OnConnectionClose(me, e.Connection())
	case MConnectionError:
		a.mhandler.OnConnectionError(me, e.Connection())
	case MTransportClose:
		a.mhandler.OnTransportClose(me, e.Transport())
	case MTransportError:
		a.mhandler.OnTransportError(me, e.Transport())
	case MTimer:
		a.mhandler.OnTimer(me, a.Container)
	default:
		panic(fmt.Errorf("internal error, cannot fire %s", t))
	}
}

// HandleEvent handles a raw engine event by firing the corresponding
// messaging event(s) and applying policy side effects. It never returns
// or propagates an error: remote error conditions surface as *Error
// messaging events.
func (a *MessagingAdapter) HandleEvent(e Event) {
	switch e.Type() {

	case EConnectionInit:
		if a.Container != nil {
			a.fire(MStart, e)
		}

	case EConnectionRemoteOpen, EConnectionRemoteClose:
		a.connection.HandleEvent(e)

	case ESessionRemoteOpen, ESessionRemoteClose:
		a.session.HandleEvent(e)

	case ELinkRemoteOpen:
		// Seed the link context before the open callback so the
		// container's link defaults apply to a remotely initiated link.
		a.linkContext(e.Link())
		a.link.HandleEvent(e)
		a.creditTopup(e.Link())

	case ELinkRemoteClose:
		a.link.HandleEvent(e)

	case ELinkLocalOpen:
		// Make a locally opened receiver usable without waiting for a
		// flow event.
		a.creditTopup(e.Link())

	case ELinkFlow:
		if l := e.Link(); l.IsSender() && l.Credit() > 0 {
			a.fire(MSendable, e)
		}
		a.creditTopup(e.Link())

	case EDelivery:
		if e.Delivery().Link().IsReceiver() {
			a.incoming(e)
		} else {
			a.outgoing(e)
		}

	case ETransportTailClosed:
		conn := e.Connection()
		if conn != nil && conn.State().LocalActive() {
			if e.Transport().Condition().IsSet() {
				a.fire(MTransportError, e)
			}
			a.fire(MTransportClose, e)
		}

	case ETimerTask:
		if a.Container != nil {
			a.fire(MTimer, e)
		}

	case ELinkFinal:
		delete(a.links, e.Link())

	case EConnectionFinal:
		delete(a.connections, e.Connection())
	}
}

// incoming handles a delivery event on a receiver link.
func (a *MessagingAdapter) incoming(e Event) {
	delivery := e.Delivery()
	link := delivery.Link()
	lctx := a.linkContext(link)

	switch {
	case delivery.Readable() && !delivery.Partial():
		cctx := a.connectionContext(link.Session().Connection())
		// Reusable per-connection message, avoids a heap allocation
		// for every delivery.
		msg := &cctx.eventMessage
		if err := delivery.Decode(msg); err != nil {
			Logger().Error("message decode failed",
				zap.String("link", link.Name()),
				zap.Error(err))
			Reject(delivery)
			break
		}
		if link.State().LocalClosed() {
			// The application already closed the link, don't hand it
			// more messages.
			if lctx.AutoAccept {
				Release(delivery, false)
			}
		} else {
			a.mhandler.OnMessage(MessagingEvent{MMessage, e}, delivery, msg)
			if lctx.AutoAccept && !delivery.Settled() {
				Accept(delivery)
			}
		}

	case delivery.Updated() && delivery.Settled():
		a.fire(MDeliverySettle, e)
	}
	a.creditTopup(link)
}

// outgoing handles a delivery event on a sender link.
func (a *MessagingAdapter) outgoing(e Event) {
	delivery := e.Delivery()
	if !delivery.Updated() {
		return
	}
	switch delivery.Remote() {
	case Accepted:
		a.fire(MDeliveryAccept, e)
	case Rejected:
		a.fire(MDeliveryReject, e)
	case Released, Modified:
		a.fire(MDeliveryRelease, e)
	}
	if delivery.Settled() {
		// The delivery was settled remotely, inform the local end.
		a.fire(MDeliverySettle, e)
	}
	if a.linkContext(delivery.Link()).AutoSettle {
		delivery.Settle()
	}
}

// creditTopup restores the outstanding credit of a receiver link to its
// context's credit window. It is a no-op for senders and for links with
// a zero window, and is safe to call redundantly on every event.
func (a *MessagingAdapter) creditTopup(link Link) {
	if link == nil || !link.IsReceiver() {
		return
	}
	window := a.linkContext(link).CreditWindow
	if window == 0 {
		return
	}
	link.Flow(window - link.Credit())
}
