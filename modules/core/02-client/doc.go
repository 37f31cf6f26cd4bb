/*
Package client implements the ICS 02 - Client Semantics specification
(https://github.com/cosmos/ibc/tree/master/spec/core/ics-002-client-semantics): the
client registry that creates, updates and queries light clients, and reserves
the sentinel 09-localhost identifier for the loopback client.
*/
package client
