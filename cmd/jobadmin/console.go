package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"jobadmin/internal/export"
	"jobadmin/internal/model"
	"jobadmin/internal/rbac"
	"jobadmin/internal/service"
)

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

func dashboardCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the landing-page counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := c.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			s, err := c.svc.Dashboard.Stats(ctx)
			if err != nil {
				return err
			}
			t := newTable("Metric", "Value").Rows(
				[]string{"Employees", strconv.Itoa(s.TotalEmployees)},
				[]string{"Employers", strconv.Itoa(s.TotalEmployers)},
				[]string{"Jobs", fmt.Sprintf("%d (%d active)", s.TotalJobs, s.ActiveJobs)},
				[]string{"CV requests", strconv.Itoa(s.TotalCVRequests)},
				[]string{"Pending coupons", strconv.Itoa(s.PendingCoupons)},
				[]string{"Commissions", s.TotalCommissions.String()},
			)
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

func couponsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coupons",
		Short: "Review and assign discount coupons",
	}

	printCoupons := func(cmd *cobra.Command, coupons []model.Coupon) {
		now := time.Now()
		t := newTable("ID", "Code", "Discount", "Expires", "Status", "Created by")
		for _, cp := range coupons {
			expiry := cp.ExpiryDate.String()
			if cp.Expired(now) {
				expiry += " (expired)"
			}
			staff := "-"
			if cp.Staff != nil {
				staff = cp.Staff.Name
			}
			t.Row(strconv.FormatInt(cp.ID, 10), cp.Code, cp.DiscountPercentage.String()+"%", expiry, cp.Status, staff)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List every coupon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := c.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			coupons, err := c.svc.Coupons.List(ctx)
			if err != nil {
				return err
			}
			printCoupons(cmd, coupons)
			return nil
		},
	}

	pending := &cobra.Command{
		Use:   "pending",
		Short: "List coupons waiting for review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := c.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			coupons, err := c.svc.Coupons.Pending(ctx)
			if err != nil {
				return err
			}
			if len(coupons) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No pending coupons")
				return nil
			}
			printCoupons(cmd, coupons)
			return nil
		},
	}

	review := func(use, status, done string) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <id>",
			Short: strings.ToUpper(use[:1]) + use[1:] + " a pending coupon (super admin)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				ctx, sess, err := c.signedIn(cmd.Context())
				if err != nil {
					return err
				}
				if err := c.svc.Coupons.Review(ctx, sess.Role, id, status); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("✓"), done)
				return nil
			},
		}
	}

	assign := &cobra.Command{
		Use:   "assign <id> <email-or-mobile>...",
		Short: "Give an approved coupon to users",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, _, err := c.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			res, err := c.svc.Coupons.Assign(ctx, id, args[1:])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d user(s) assigned successfully\n", okStyle.Render("✓"), len(res.Assigned))
			for _, f := range res.Failed {
				fmt.Fprintf(out, "%s %s: %s\n", errStyle.Render("✗"), f.Identifier, f.Reason)
			}
			return nil
		},
	}

	cmd.AddCommand(list, pending,
		review("approve", model.CouponApproved, "Coupon approved successfully"),
		review("reject", model.CouponRejected, "Coupon rejected"),
		assign,
	)
	return cmd
}

func cvRequestsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cv-requests",
		Short: "Manage CV writing requests",
	}

	var current string
	setStatus := &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Move a CV request to another status",
		Long:  "Statuses: " + strings.Join(model.CVStatuses, ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, _, err := c.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			if err := c.svc.CVRequests.UpdateStatus(ctx, id, current, args[1]); err != nil {
				if errors.Is(err, service.ErrNoChange) {
					fmt.Fprintln(cmd.OutOrStdout(), warnStyle.Render("!"), "Status is already", args[1])
					return nil
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("✓"), "Status updated successfully")
			return nil
		},
	}
	setStatus.Flags().StringVar(&current, "current", "", "status the request has now (looked up when omitted); unchanged statuses are skipped")

	cmd.AddCommand(setStatus)
	return cmd
}

func photosCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photos",
		Short: "Review employee profile photos",
	}

	approve := &cobra.Command{
		Use:   "approve <employee-id>",
		Short: "Approve a profile photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, _, err := c.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			if err := c.svc.ProfilePhotos.Approve(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("✓"), "Profile photo approved successfully")
			return nil
		},
	}

	var reason string
	reject := &cobra.Command{
		Use:   "reject <employee-id>",
		Short: "Reject a profile photo with a reason",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, _, err := c.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			if err := c.svc.ProfilePhotos.Reject(ctx, id, reason); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("✓"), "Profile photo rejected")
			return nil
		},
	}
	reject.Flags().StringVar(&reason, "reason", "", "reason shown to the employee (required)")

	cmd.AddCommand(approve, reject)
	return cmd
}

func jobsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Job posting helpers",
	}
	quota := &cobra.Command{
		Use:   "quota <employer-id>",
		Short: "Show how many more jobs an employer may post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, _, err := c.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			e, err := c.svc.Employers.Get(ctx, id)
			if err != nil {
				return err
			}
			q := service.PostingQuota(e)
			style := okStyle
			switch {
			case !q.CanPost:
				style = errStyle
			case q.Severity == "warning":
				style = warnStyle
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", titleStyle.Render(e.CompanyName), style.Render(q.Message))
			return nil
		},
	}
	cmd.AddCommand(quota)
	return cmd
}

func exportCmd(c *cli) *cobra.Command {
	var out, search, status string
	names := make([]string, 0, len(export.Kinds))
	for _, k := range export.Kinds {
		names = append(names, string(k))
	}
	cmd := &cobra.Command{
		Use:       "export <kind>",
		Short:     "Write a list screen to a CSV file",
		Long:      "Kinds: " + strings.Join(names, ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := export.ParseKind(args[0])
			if !ok {
				return fmt.Errorf("unknown export kind %q (want one of %s)", args[0], strings.Join(names, ", "))
			}
			ctx, sess, err := c.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			if (kind == export.Orders || kind == export.Transactions) && !rbac.HasRole(sess.Role, rbac.SuperAdmin, rbac.Manager) {
				return fmt.Errorf("%s export needs the super admin or manager role", kind)
			}

			path := out
			if path == "" {
				path = fmt.Sprintf("%s-%s.csv", kind, time.Now().Format("20060102-150405"))
			}
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			rows, err := export.WriteCSV(ctx, c.api, c.svc.Commissions, export.Request{
				Kind:  kind,
				Query: model.ListQuery{Search: search, Status: status},
				Actor: sess.User,
				Role:  sess.Role,
			}, f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				_ = os.Remove(path)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d row(s) written to %s\n", okStyle.Render("✓"), rows, path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default <kind>-<timestamp>.csv)")
	cmd.Flags().StringVar(&search, "search", "", "search text, as on the list screen")
	cmd.Flags().StringVar(&status, "status", "", "status filter, as on the list screen")
	return cmd
}
