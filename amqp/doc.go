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
Package amqp holds AMQP 1.0 value types shared by the rest of the module:
the Message record and the Error condition type.

Wire-level encoding and decoding is not done here, it belongs to the
protocol engine. The engine decodes message data into a *Message; see
the proton package for how messages are delivered to application code.

AMQP 1.0 is an open standard for inter-operable message exchange, see
<http://www.amqp.org/>
*/
package amqp
