/*
Package localhost implements a concrete ClientState, ConsensusState and
Misbehaviour for the loopback (localhost) light client. The loopback client
lets modules address the local ledger through the same client interface used
for remote chains, without consensus-state tracking or cryptographic proof
verification: membership and non-membership are answered by direct reads of
the shared IBC store.

Note the client identifier is expected to be: 09-localhost.
This is validated by the 02-client submodule.
*/
package localhost
