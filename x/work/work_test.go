package work

import (
	"context"
	"testing"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/app"
	"github.com/charlieabtbl/cosmicroses/errors"
	"github.com/charlieabtbl/cosmicroses/rosestest"
	"github.com/charlieabtbl/cosmicroses/store"
	"github.com/charlieabtbl/cosmicroses/x/access"
	"github.com/charlieabtbl/cosmicroses/x/shares"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRecords(t *testing.T) {
	Convey("Given a deployed work", t, func() {
		codes := app.NewCodeRegistry()
		So(codes.Register(NewCode()), ShouldBeNil)
		rt := app.NewRuntime(store.MemStore(), codes, nil)
		ctx := context.Background()

		admin := rosestest.NewCondition()
		licensee := rosestest.NewCondition()
		stranger := rosestest.NewCondition()
		workPayees := rosestest.NewCondition().Address()
		recordPayees := rosestest.NewCondition().Address()

		w, err := rt.Deploy(ctx, admin, "work@1.0.0", &InitializerMsg{
			Name:           "work",
			Symbol:         "WRK",
			PayeesContract: workPayees,
		})
		So(err, ShouldBeNil)

		query := func(msg cosmicroses.Msg) (*cosmicroses.DeliverResult, error) {
			return rt.Query(ctx, w, msg)
		}
		address := func(msg cosmicroses.Msg) cosmicroses.Address {
			res, err := query(msg)
			So(err, ShouldBeNil)
			var r cosmicroses.AddressResult
			So(cosmicroses.LoadResult(res, &r), ShouldBeNil)
			return r.Value
		}
		share := func(msg cosmicroses.Msg) (*shares.Share, error) {
			res, err := query(msg)
			if err != nil {
				return nil, err
			}
			var s shares.Share
			if err := cosmicroses.LoadResult(res, &s); err != nil {
				return nil, err
			}
			return &s, nil
		}

		So(address(&GetWorkPayeesContractMsg{}), ShouldResemble, workPayees)

		Convey("Creating a record requires the recording licensee role", func() {
			_, err := rt.Execute(ctx, licensee, w, &CreateRecordMsg{TokenURI: "test1.io", PayeesContract: recordPayees})
			So(errors.ErrUnauthorized.Is(err), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "caller is missing role")
		})

		Convey("Only the admin can grant the recording licensee role", func() {
			_, err := rt.Execute(ctx, stranger, w, &access.GrantRoleMsg{Role: RecordingLicenseeRole, Account: licensee.Address()})
			So(errors.ErrUnauthorized.Is(err), ShouldBeTrue)
		})

		Convey("Only the admin can change the work payees contract", func() {
			_, err := rt.Execute(ctx, stranger, w, &SetWorkPayeesContractMsg{PayeesContract: stranger.Address()})
			So(errors.ErrUnauthorized.Is(err), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "caller is missing role 0")
			So(address(&GetWorkPayeesContractMsg{}), ShouldResemble, workPayees)

			_, err = rt.Execute(ctx, admin, w, &SetWorkPayeesContractMsg{PayeesContract: recordPayees})
			So(err, ShouldBeNil)
			So(address(&GetWorkPayeesContractMsg{}), ShouldResemble, recordPayees)
		})

		Convey("When the licensee creates two records", func() {
			_, err := rt.Execute(ctx, admin, w, &access.GrantRoleMsg{Role: RecordingLicenseeRole, Account: licensee.Address()})
			So(err, ShouldBeNil)

			c1 := rosestest.NewCondition().Address()
			c2 := rosestest.NewCondition().Address()
			c3 := rosestest.NewCondition().Address()

			first, err := cosmicroses.Uint64(rt.Execute(ctx, licensee, w, &CreateRecordMsg{
				TokenURI:     "test1.io",
				Contributors: []*shares.Entry{{Address: c1, Shares: 150}, {Address: c2, Shares: 100}},
			}))
			So(err, ShouldBeNil)
			So(first, ShouldEqual, 1)

			second, err := cosmicroses.Uint64(rt.Execute(ctx, licensee, w, &CreateRecordMsg{
				TokenURI:       "test2.io",
				PayeesContract: recordPayees,
			}))
			So(err, ShouldBeNil)
			So(second, ShouldEqual, 2)

			Convey("Both are owned by the licensee", func() {
				So(address(&OwnerOfMsg{TokenID: 1}), ShouldResemble, licensee.Address())
				n, err := cosmicroses.Uint64(query(&BalanceOfMsg{Owner: licensee.Address()}))
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 2)

				res, err := query(&TokenURIMsg{TokenID: 2})
				So(err, ShouldBeNil)
				var uri cosmicroses.StringResult
				So(cosmicroses.LoadResult(res, &uri), ShouldBeNil)
				So(uri.Value, ShouldEqual, "test2.io")

				_, err = query(&OwnerOfMsg{TokenID: 3})
				So(errors.ErrNotFound.Is(err), ShouldBeTrue)
			})

			Convey("Each record keeps its own contributors", func() {
				s, err := share(&GetRecordContributorByAddressMsg{TokenID: 1, Address: c2})
				So(err, ShouldBeNil)
				So(s.Shares, ShouldEqual, 100)

				_, err = share(&GetRecordContributorByAddressMsg{TokenID: 2, Address: c2})
				So(errors.ErrNotFound.Is(err), ShouldBeTrue)

				s, err = share(&FindRecordContributorByAddressMsg{TokenID: 2, Address: c2})
				So(err, ShouldBeNil)
				So(s.Shares, ShouldEqual, 0)

				n, err := cosmicroses.Uint64(query(&RecordContributorsCountMsg{TokenID: 1}))
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 2)

				So(address(&GetRecordPayeesContractMsg{TokenID: 2}), ShouldResemble, recordPayees)
				So(address(&GetRecordPayeesContractMsg{TokenID: 1}), ShouldBeEmpty)
			})

			Convey("Changing the work contributors does not change the records", func() {
				_, err := rt.Execute(ctx, admin, w, &SetBatchWorkContributorsMsg{
					Contributors: []*shares.Entry{{Address: c2, Shares: 1}, {Address: c3, Shares: 9}},
				})
				So(err, ShouldBeNil)

				s, err := share(&GetWorkContributorByAddressMsg{Address: c3})
				So(err, ShouldBeNil)
				So(s.Shares, ShouldEqual, 9)
				total, err := cosmicroses.Uint64(query(&WorkTotalSharesMsg{}))
				So(err, ShouldBeNil)
				So(total, ShouldEqual, 10)

				s, err = share(&GetRecordContributorByAddressMsg{TokenID: 1, Address: c2})
				So(err, ShouldBeNil)
				So(s.Shares, ShouldEqual, 100)
				_, err = share(&GetRecordContributorByAddressMsg{TokenID: 1, Address: c3})
				So(errors.ErrNotFound.Is(err), ShouldBeTrue)
			})

			Convey("A record can be transferred by an approved spender", func() {
				buyer := rosestest.NewCondition()
				_, err := rt.Execute(ctx, stranger, w, &TransferFromMsg{From: licensee.Address(), To: buyer.Address(), TokenID: 1})
				So(errors.ErrUnauthorized.Is(err), ShouldBeTrue)

				_, err = rt.Execute(ctx, licensee, w, &ApproveMsg{Spender: stranger.Address(), TokenID: 1})
				So(err, ShouldBeNil)
				So(address(&GetApprovedMsg{TokenID: 1}), ShouldResemble, stranger.Address())

				_, err = rt.Execute(ctx, stranger, w, &TransferFromMsg{From: licensee.Address(), To: buyer.Address(), TokenID: 1})
				So(err, ShouldBeNil)
				So(address(&OwnerOfMsg{TokenID: 1}), ShouldResemble, buyer.Address())
				So(address(&GetApprovedMsg{TokenID: 1}), ShouldBeEmpty)

				n, err := cosmicroses.Uint64(query(&BalanceOfMsg{Owner: licensee.Address()}))
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 1)
			})

			Convey("A paused work does not create records", func() {
				_, err := rt.Execute(ctx, admin, w, &PauseMsg{})
				So(errors.ErrUnauthorized.Is(err), ShouldBeTrue)

				_, err = rt.Execute(ctx, admin, w, &access.GrantRoleMsg{Role: PauserRole, Account: admin.Address()})
				So(err, ShouldBeNil)
				_, err = rt.Execute(ctx, admin, w, &PauseMsg{})
				So(err, ShouldBeNil)
				paused, err := cosmicroses.Bool(query(&PausedMsg{}))
				So(err, ShouldBeNil)
				So(paused, ShouldBeTrue)

				_, err = rt.Execute(ctx, licensee, w, &CreateRecordMsg{TokenURI: "test3.io", PayeesContract: recordPayees})
				So(errors.ErrPaused.Is(err), ShouldBeTrue)

				_, err = rt.Execute(ctx, admin, w, &UnpauseMsg{})
				So(err, ShouldBeNil)
				third, err := cosmicroses.Uint64(rt.Execute(ctx, licensee, w, &CreateRecordMsg{TokenURI: "test3.io", PayeesContract: recordPayees}))
				So(err, ShouldBeNil)
				So(third, ShouldEqual, 3)
			})
		})

		Convey("The work can be initialized only once", func() {
			_, err := rt.Execute(ctx, admin, w, &InitializerMsg{Name: "again", Symbol: "AGN"})
			So(errors.ErrAlreadyInitialized.Is(err), ShouldBeTrue)
		})

		Convey("Version 2 entry points are not available", func() {
			_, err := rt.Execute(ctx, admin, w, &SetVarMsg{Var: 2})
			So(errors.ErrNotFound.Is(err), ShouldBeTrue)
		})
	})
}

func TestSupportsInterface(t *testing.T) {
	cases := map[string]struct {
		id   uint32
		want bool
	}{
		"work":   {id: WorkInterfaceID, want: true},
		"erc721": {id: ERC721InterfaceID, want: true},
		"random": {id: 0x894c58cd, want: false},
		"zero":   {id: 0, want: false},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := SupportsInterface(tc.id); got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSelector(t *testing.T) {
	// keccak256("transfer(address,uint256)")
	if got := Selector("transfer(address,uint256)"); got != 0xa9059cbb {
		t.Fatalf("unexpected selector %x", got)
	}
}
