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

/*
Package proton turns the raw event stream of an AMQP 1.0 protocol engine
into the small set of messaging callbacks most applications want:
message arrived, link opened, delivery accepted and so on.

The protocol engine is an external collaborator. It owns the wire codec,
the sockets and the security negotiation; this package only consumes
Event records and endpoint-state queries from it, and issues commands
back (open, close, flow, accept, settle, decode). The engine side of
that boundary is the set of interfaces in endpoint.go, which the engine
implements for its connections, sessions, links, deliveries and
transports.

Application code implements MessagingHandler, usually by embedding
DefaultMessagingHandler and overriding only the methods it cares about,
and registers it with a MessagingAdapter. The adapter classifies each
raw event, invokes the matching handler method and applies the standard
messaging policies as side effects: receiver credit is topped up to the
link's credit window, readable deliveries are auto-accepted, sender
deliveries are auto-settled once the remote outcome is known, and
remotely opened or closed endpoints are opened or closed locally.

Dispatch is single-threaded and run-to-completion: one raw event is
fully processed, including the handler callback and all side effects,
before the next is considered. Handler methods run inline on the
event-processing goroutine and must return promptly. Independent
connections may be pumped concurrently on separate goroutines (see
Driver and Group), no state is shared between them.
*/
package proton
