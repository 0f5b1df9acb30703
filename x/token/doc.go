/*
Package token implements a minimal fungible token contract.

The token is the collaborator of the payment splitter: it keeps balances,
moves them on transfer and reports them through balanceOf. Other contracts
use the Client to call a token instance through the runtime invoker.
*/
package token
