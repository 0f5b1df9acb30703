/*
Package errors implements the error kinds used by the contract runtime and
every contract code.

Reuse as many errors from this package as possible and define custom package
errors when absolutely necessary. Register(code, description) declares a new
root error. For reusing errors use ErrXyz.New and ErrXyz.Newf, or Wrap and
Wrapf to add context to an existing error. ErrXyz.Is(err) tells if err was
created from ErrXyz, no matter how many times it was wrapped.

The code of an error allows to distinguish the kind of a failure on the
client side without parsing the message. Info extracts the code and the log
of an error the way a call response presents it.

Stacktraces are attached by the innermost Wrap. Use fmt with %+v to print the
full stack trace of an error.
*/
package errors
