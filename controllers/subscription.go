package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
	"gorm.io/gorm"

	"github.com/clientsbook/clientsbook-api/db"
	"github.com/clientsbook/clientsbook-api/models"
	"github.com/clientsbook/clientsbook-api/utils"
)

type premiumPlan struct {
	Name         string
	UnitAmount   int64 // smallest currency unit
	DurationDays int
}

var premiumPlans = map[string]premiumPlan{
	"monthly": {Name: "ClientsBook Premium, 1 month", UnitAmount: 49900, DurationDays: 30},
	"yearly":  {Name: "ClientsBook Premium, 1 year", UnitAmount: 399900, DurationDays: 365},
}

// CreatePremiumCheckout starts a Stripe Checkout session for a premium plan.
func CreatePremiumCheckout(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	type checkoutInput struct {
		Plan string `json:"plan"`
	}
	input := new(checkoutInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	plan, ok := premiumPlans[input.Plan]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Unknown plan, expected monthly or yearly",
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(os.Getenv("PREMIUM_CURRENCY")),
					UnitAmount: stripe.Int64(plan.UnitAmount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(plan.Name),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(os.Getenv("CHECKOUT_SUCCESS_URL")),
		CancelURL:  stripe.String(os.Getenv("CHECKOUT_CANCEL_URL")),
	}
	params.AddMetadata("provider_id", strconv.FormatUint(uint64(userID), 10))
	params.AddMetadata("duration_days", strconv.Itoa(plan.DurationDays))
	params.AddMetadata("plan", input.Plan)

	sess, err := checkoutsession.New(params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create checkout session",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"checkout_url": sess.URL, "session_id": sess.ID})
}

// PremiumWebhook handles Stripe events. Signature verification is the auth;
// the route is public.
func PremiumWebhook(c *fiber.Ctx) error {
	secret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if secret == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Webhook not configured",
		})
	}

	event, err := webhook.ConstructEvent(c.Body(), c.Get("Stripe-Signature"), secret)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid signature",
			Error:   err.Error(),
		})
	}

	if event.Type != "checkout.session.completed" {
		return c.SendStatus(fiber.StatusOK)
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid checkout session payload",
			Error:   err.Error(),
		})
	}

	providerID, err := strconv.ParseUint(sess.Metadata["provider_id"], 10, 64)
	if err != nil {
		log.Printf("premium webhook: bad provider_id metadata on session %s", sess.ID)
		return c.SendStatus(fiber.StatusOK)
	}
	durationDays, err := strconv.Atoi(sess.Metadata["duration_days"])
	if err != nil || durationDays <= 0 {
		log.Printf("premium webhook: bad duration_days metadata on session %s", sess.ID)
		return c.SendStatus(fiber.StatusOK)
	}

	if err := activatePremium(subStore, uint(providerID), sess.Metadata["plan"], durationDays, time.Now()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to activate subscription",
			Error:   err.Error(),
		})
	}

	log.Printf("premium activated for master %d (%d days)", providerID, durationDays)
	return c.SendStatus(fiber.StatusOK)
}

// subscriptionStore is the persistence slice the activation path needs.
type subscriptionStore interface {
	ByProvider(providerID uint) (*models.PremiumSubscription, error)
	Save(sub *models.PremiumSubscription) error
}

// activatePremium creates or extends the master's subscription. Extending an
// active subscription stacks on top of its current expiry. Only a missing row
// means "first purchase"; any other lookup failure aborts the activation so a
// flaky read cannot spawn a second subscription row.
func activatePremium(subs subscriptionStore, providerID uint, plan string, durationDays int, now time.Time) error {
	sub, err := subs.ByProvider(providerID)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub = &models.PremiumSubscription{ProviderID: providerID}
	default:
		return err
	}

	base := now
	if sub.Current(now) {
		base = sub.ExpiresAt
	}
	sub.ExpiresAt = base.AddDate(0, 0, durationDays)
	sub.IsActive = true
	if plan != "" {
		sub.PlanType = plan
	}

	return subs.Save(sub)
}

// GetPremiumStatus reports whether the master's subscription is current
func GetPremiumStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var sub models.PremiumSubscription
	if err := db.DB.Where("provider_id = ?", userID).First(&sub).Error; err != nil {
		return c.JSON(fiber.Map{"active": false})
	}

	active := sub.Current(time.Now())
	resp := fiber.Map{"active": active, "plan": sub.PlanType}
	if active {
		resp["expires_at"] = sub.ExpiresAt.Format(time.RFC3339)
		resp["days_left"] = int(time.Until(sub.ExpiresAt).Hours() / 24)
	}
	return c.JSON(resp)
}
