package userprofile

import (
	"context"
	"fmt"

	userprofiledata "github.com/upservice/user-profile-service/data/sql/userprofile"
	commoncmd "github.com/upservice/user-profile-service/internal/pkg/cmd"
	"github.com/upservice/user-profile-service/internal/userprofile/app/encoding"
	appmessage "github.com/upservice/user-profile-service/internal/userprofile/app/message"
	"github.com/upservice/user-profile-service/internal/userprofile/app/notification"
	"github.com/upservice/user-profile-service/internal/userprofile/app/service"
	"github.com/upservice/user-profile-service/internal/userprofile/domain"
	infrahttp "github.com/upservice/user-profile-service/internal/userprofile/infra/http"
	"github.com/upservice/user-profile-service/internal/userprofile/infra/password"
	infrasql "github.com/upservice/user-profile-service/internal/userprofile/infra/sql"
	"github.com/upservice/user-profile-service/internal/userprofile/infra/webhook"
	pkgenv "github.com/upservice/user-profile-service/pkg/env"
	pkghttp "github.com/upservice/user-profile-service/pkg/http"
	pkglazy "github.com/upservice/user-profile-service/pkg/lazy"
	pkglog "github.com/upservice/user-profile-service/pkg/log"
	pkgmessage "github.com/upservice/user-profile-service/pkg/message"
	pkgmetric "github.com/upservice/user-profile-service/pkg/metric"
	pkgpersistence "github.com/upservice/user-profile-service/pkg/persistence"
	pkgsql "github.com/upservice/user-profile-service/pkg/sql"
)

type DependencyContainer struct {
	UserProfileService pkglazy.Loader[service.UserProfile]

	registerUserProfileHandler pkglazy.Loader[pkghttp.Handler]
	getUserProfileHandler      pkglazy.Loader[pkghttp.Handler]
	listUserProfilesHandler    pkglazy.Loader[pkghttp.Handler]
	updateUserProfileHandler   pkglazy.Loader[pkghttp.Handler]
	updateCredentialsHandler   pkglazy.Loader[pkghttp.Handler]
	deleteUserProfileHandler   pkglazy.Loader[pkghttp.Handler]
}

func NewDependencyContainer(
	db pkglazy.Loader[pkgsql.Database],
	dbMigrations pkglazy.Loader[commoncmd.SQLMigrations],
	messageBroker pkglazy.Loader[pkgmessage.Broker],
	logger pkglazy.Loader[pkglog.Logger],
) *DependencyContainer {
	eventDispatcher := eventDispatcherProvider(messageBroker)
	transaction := transactionProvider(db, eventDispatcher, logger)
	profileRepo := userProfileRepositoryProvider(db, dbMigrations, eventDispatcher)
	passwordHasher := passwordHasherProvider()
	validator := validatorProvider()

	profileService := userProfileServiceProvider(profileRepo, passwordHasher, validator, transaction)

	return &DependencyContainer{
		UserProfileService: profileService,
		registerUserProfileHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return infrahttp.NewRegisterUserProfileHandler(profileService.MustLoad()), nil
		}),
		getUserProfileHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return infrahttp.NewGetUserProfileHandler(profileService.MustLoad()), nil
		}),
		listUserProfilesHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return infrahttp.NewListUserProfilesHandler(profileService.MustLoad()), nil
		}),
		updateUserProfileHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return infrahttp.NewUpdateUserProfileHandler(profileService.MustLoad()), nil
		}),
		updateCredentialsHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return infrahttp.NewUpdateCredentialsHandler(profileService.MustLoad()), nil
		}),
		deleteUserProfileHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return infrahttp.NewDeleteUserProfileHandler(profileService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.registerUserProfileHandler.MustLoad())
	registry.Register(c.listUserProfilesHandler.MustLoad())
	registry.Register(c.getUserProfileHandler.MustLoad())
	registry.Register(c.updateUserProfileHandler.MustLoad())
	registry.Register(c.updateCredentialsHandler.MustLoad())
	registry.Register(c.deleteUserProfileHandler.MustLoad())
}

// MustCreateNotificationListener subscribes to the profile event topic and
// forwards every event to the webhook destination.
func (c *DependencyContainer) MustCreateNotificationListener(
	messageBroker pkglazy.Loader[pkgmessage.Broker],
	httpClients pkglazy.Loader[commoncmd.HTTPClientFactory],
	logger pkglazy.Loader[pkglog.Logger],
	metrics pkglazy.Loader[pkgmetric.Metrics],
) *pkgmessage.Listener {
	consumer, err := messageBroker.MustLoad().Consumer(
		appmessage.UserProfileEventTopic,
		pkgmessage.NewSubscriberServiceName(domain.Name),
		pkgmessage.ConsumptionTypeSingle,
	)
	if err != nil {
		panic(fmt.Errorf("create %s consumer: %w", appmessage.UserProfileEventTopic, err))
	}

	webhookClient := httpClients.MustLoad().MustInitClient(webhook.DestinationWebhook)
	notifier := webhook.NewNotifier(webhookClient)
	deserializer := appmessage.NewEventDeserializer()

	return pkgmessage.NewListener(
		consumer,
		pkgmessage.NewCompositeHandler(
			notification.NewEventUserProfileRegisteredHandler(deserializer, notifier),
			notification.NewEventUserProfileUpdatedHandler(deserializer, notifier),
			notification.NewEventUserProfileDeletedHandler(deserializer, notifier),
		),
		pkgmessage.WithHandlerLogging(logger.MustLoad(), pkglog.LevelInfo, pkglog.LevelError),
		pkgmessage.WithHandlerMetrics(metrics.MustLoad()),
	)
}

func eventDispatcherProvider(messageBroker pkglazy.Loader[pkgmessage.Broker]) pkglazy.Loader[*pkgsql.DeferredEventDispatcher] {
	return pkglazy.New(func() (*pkgsql.DeferredEventDispatcher, error) {
		return pkgsql.NewDeferredEventDispatcher(
			pkgmessage.NewEventDispatcher(messageBroker.MustLoad(), appmessage.NewEventSerializer()),
		), nil
	})
}

func transactionProvider(
	db pkglazy.Loader[pkgsql.Database],
	eventDispatcher pkglazy.Loader[*pkgsql.DeferredEventDispatcher],
	logger pkglazy.Loader[pkglog.Logger],
) pkglazy.Loader[pkgpersistence.Transaction] {
	return pkglazy.New(func() (pkgpersistence.Transaction, error) {
		return pkgsql.NewTransaction(db.MustLoad(), domain.Name, func(ctx context.Context) {
			err := eventDispatcher.MustLoad().Flush(ctx)
			if err != nil {
				logger.MustLoad().WithError(err).Error(ctx, "failed to dispatch user profile events")
			}
		}), nil
	})
}

func userProfileRepositoryProvider(
	db pkglazy.Loader[pkgsql.Database],
	dbMigrations pkglazy.Loader[commoncmd.SQLMigrations],
	eventDispatcher pkglazy.Loader[*pkgsql.DeferredEventDispatcher],
) pkglazy.Loader[domain.UserProfileRepository] {
	return pkglazy.New(func() (domain.UserProfileRepository, error) {
		dbMigrations.MustLoad().MustRegister(userprofiledata.Migrations)
		client := pkgsql.NewTransactionalClient(db.MustLoad())

		return infrasql.NewUserProfileRepository(client, eventDispatcher.MustLoad()), nil
	})
}

func passwordHasherProvider() pkglazy.Loader[encoding.PasswordHasher] {
	return pkglazy.New(func() (encoding.PasswordHasher, error) {
		return password.NewBcryptHasher(), nil
	})
}

func validatorProvider() pkglazy.Loader[service.Validator] {
	return pkglazy.New(func() (service.Validator, error) {
		passwordPolicy := service.PasswordPolicyStandard
		policyName, err := pkgenv.ParseOptional[string]("PASSWORD_POLICY")
		if err != nil {
			return service.Validator{}, err
		}
		if policyName != nil {
			namedPolicy, ok := service.PasswordPolicyByName(*policyName)
			if !ok {
				return service.Validator{}, fmt.Errorf("unknown password policy %s", *policyName)
			}
			passwordPolicy = namedPolicy
		}

		return service.NewValidator(passwordPolicy, service.PasswordPolicyLegacy), nil
	})
}

func userProfileServiceProvider(
	profileRepo pkglazy.Loader[domain.UserProfileRepository],
	passwordHasher pkglazy.Loader[encoding.PasswordHasher],
	validator pkglazy.Loader[service.Validator],
	transaction pkglazy.Loader[pkgpersistence.Transaction],
) pkglazy.Loader[service.UserProfile] {
	return pkglazy.New(func() (service.UserProfile, error) {
		return service.NewUserProfileService(
			profileRepo.MustLoad(),
			passwordHasher.MustLoad(),
			validator.MustLoad(),
			transaction.MustLoad(),
		), nil
	})
}
