/*
Package work implements a registry of records of a musical work.

Each record is a non fungible token. When a record is created its
contributors are frozen: either as a set of shares kept by the registry
or as the address of a payment splitter contract that pays them. The
work itself has a mutable set of contributors and a splitter address
managed by the admin.

Two versions of the code exist. Version 2.0.0 keeps the storage of 1.0.0
and appends a variable to the configuration, so that a proxy can upgrade
a deployed work without losing any record.
*/
package work
