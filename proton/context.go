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
	"github.com/ncau/qpid-proton/amqp"
)

// LinkContext is the per-link policy record. It is attached to a link
// on first need, initialized from the adapter's defaults (or the
// container's link defaults, if a container is set), and evicted when
// the link's final event arrives.
type LinkContext struct {
	// CreditWindow is the credit level automatic top-up restores on a
	// receiver link. Zero means no automatic top-up.
	CreditWindow int
	// AutoAccept accepts and settles incoming messages after the
	// message callback returns, if the handler did not settle them.
	AutoAccept bool
	// AutoSettle settles outgoing deliveries once the remote outcome is
	// known.
	AutoSettle bool
}

// ConnectionContext is the per-connection state record. It holds the
// message reused for decoding every inbound delivery on the connection.
type ConnectionContext struct {
	eventMessage amqp.Message
}

// LinkContext returns the context of a link, creating it with the
// current defaults if the link has none yet. Applications can use it to
// override the policy flags of an individual link; do so before the
// first event that consults the flag.
func (a *MessagingAdapter) LinkContext(l Link) *LinkContext {
	return a.linkContext(l)
}

func (a *MessagingAdapter) linkContext(l Link) *LinkContext {
	if ctx, ok := a.links[l]; ok {
		return ctx
	}
	ctx := &LinkContext{
		CreditWindow: a.CreditWindow,
		AutoAccept:   a.AutoAccept,
		AutoSettle:   a.AutoSettle,
	}
	if a.Container != nil {
		ctx.CreditWindow = a.Container.LinkDefaults.CreditWindow
		ctx.AutoAccept = a.Container.LinkDefaults.AutoAccept
		ctx.AutoSettle = a.Container.LinkDefaults.AutoSettle
	}
	a.links[l] = ctx
	return ctx
}

func (a *MessagingAdapter) connectionContext(c Connection) *ConnectionContext {
	if ctx, ok := a.connections[c]; ok {
		return ctx
	}
	ctx := &ConnectionContext{}
	ctx.eventMessage.Clear()
	a.connections[c] = ctx
	return ctx
}
