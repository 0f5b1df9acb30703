/*
Package payees implements a payment splitter.

A splitter holds token balances on behalf of a registered set of payees.
Every payee is entitled to a part of all tokens ever received by the
splitter, proportional to its shares. The entitlement that was not yet
transferred can be released by anyone, at any time:

	pending = (balance + totalReleased) * shares / totalShares - released

The division truncates and the remainder stays on the splitter.
*/
package payees
