// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/agentdefinition"
	"github.com/swarmshield/swarmshield/ent/agentevent"
	"github.com/swarmshield/swarmshield/ent/agentinstance"
	"github.com/swarmshield/swarmshield/ent/analysissession"
	"github.com/swarmshield/swarmshield/ent/auditentry"
	"github.com/swarmshield/swarmshield/ent/consensuspolicy"
	"github.com/swarmshield/swarmshield/ent/deliberationmessage"
	"github.com/swarmshield/swarmshield/ent/detectionrule"
	"github.com/swarmshield/swarmshield/ent/ghostprotocolconfig"
	"github.com/swarmshield/swarmshield/ent/policyrule"
	"github.com/swarmshield/swarmshield/ent/policyviolation"
	"github.com/swarmshield/swarmshield/ent/prompttemplate"
	"github.com/swarmshield/swarmshield/ent/registeredagent"
	"github.com/swarmshield/swarmshield/ent/schema"
	"github.com/swarmshield/swarmshield/ent/verdict"
	"github.com/swarmshield/swarmshield/ent/workflow"
	"github.com/swarmshield/swarmshield/ent/workflowstep"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentdefinitionFields := schema.AgentDefinition{}.Fields()
	_ = agentdefinitionFields
	// agentdefinitionDescName is the schema descriptor for name field.
	agentdefinitionDescName := agentdefinitionFields[2].Descriptor()
	// agentdefinition.NameValidator is a validator for the "name" field. It is called by the builders before save.
	agentdefinition.NameValidator = agentdefinitionDescName.Validators[0].(func(string) error)
	// agentdefinitionDescRole is the schema descriptor for role field.
	agentdefinitionDescRole := agentdefinitionFields[3].Descriptor()
	// agentdefinition.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	agentdefinition.RoleValidator = agentdefinitionDescRole.Validators[0].(func(string) error)
	// agentdefinitionDescTemperature is the schema descriptor for temperature field.
	agentdefinitionDescTemperature := agentdefinitionFields[7].Descriptor()
	// agentdefinition.DefaultTemperature holds the default value on creation for the temperature field.
	agentdefinition.DefaultTemperature = agentdefinitionDescTemperature.Default.(float64)
	// agentdefinitionDescMaxTokens is the schema descriptor for max_tokens field.
	agentdefinitionDescMaxTokens := agentdefinitionFields[8].Descriptor()
	// agentdefinition.DefaultMaxTokens holds the default value on creation for the max_tokens field.
	agentdefinition.DefaultMaxTokens = agentdefinitionDescMaxTokens.Default.(int)
	// agentdefinition.MaxTokensValidator is a validator for the "max_tokens" field. It is called by the builders before save.
	agentdefinition.MaxTokensValidator = agentdefinitionDescMaxTokens.Validators[0].(func(int) error)
	// agentdefinitionDescCreatedAt is the schema descriptor for created_at field.
	agentdefinitionDescCreatedAt := agentdefinitionFields[9].Descriptor()
	// agentdefinition.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentdefinition.DefaultCreatedAt = agentdefinitionDescCreatedAt.Default.(func() time.Time)
	// agentdefinitionDescUpdatedAt is the schema descriptor for updated_at field.
	agentdefinitionDescUpdatedAt := agentdefinitionFields[10].Descriptor()
	// agentdefinition.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentdefinition.DefaultUpdatedAt = agentdefinitionDescUpdatedAt.Default.(func() time.Time)
	// agentdefinition.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentdefinition.UpdateDefaultUpdatedAt = agentdefinitionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// agentdefinitionDescID is the schema descriptor for id field.
	agentdefinitionDescID := agentdefinitionFields[0].Descriptor()
	// agentdefinition.DefaultID holds the default value on creation for the id field.
	agentdefinition.DefaultID = agentdefinitionDescID.Default.(func() uuid.UUID)
	agenteventFields := schema.AgentEvent{}.Fields()
	_ = agenteventFields
	// agenteventDescCreatedAt is the schema descriptor for created_at field.
	agenteventDescCreatedAt := agenteventFields[12].Descriptor()
	// agentevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentevent.DefaultCreatedAt = agenteventDescCreatedAt.Default.(func() time.Time)
	// agenteventDescUpdatedAt is the schema descriptor for updated_at field.
	agenteventDescUpdatedAt := agenteventFields[13].Descriptor()
	// agentevent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentevent.DefaultUpdatedAt = agenteventDescUpdatedAt.Default.(func() time.Time)
	// agentevent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentevent.UpdateDefaultUpdatedAt = agenteventDescUpdatedAt.UpdateDefault.(func() time.Time)
	// agenteventDescID is the schema descriptor for id field.
	agenteventDescID := agenteventFields[0].Descriptor()
	// agentevent.DefaultID holds the default value on creation for the id field.
	agentevent.DefaultID = agenteventDescID.Default.(func() uuid.UUID)
	agentinstanceFields := schema.AgentInstance{}.Fields()
	_ = agentinstanceFields
	// agentinstanceDescRole is the schema descriptor for role field.
	agentinstanceDescRole := agentinstanceFields[3].Descriptor()
	// agentinstance.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	agentinstance.RoleValidator = agentinstanceDescRole.Validators[0].(func(string) error)
	// agentinstanceDescConfidence is the schema descriptor for confidence field.
	agentinstanceDescConfidence := agentinstanceFields[6].Descriptor()
	// agentinstance.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	agentinstance.ConfidenceValidator = agentinstanceDescConfidence.Validators[0].(func(float64) error)
	// agentinstanceDescTokensUsed is the schema descriptor for tokens_used field.
	agentinstanceDescTokensUsed := agentinstanceFields[8].Descriptor()
	// agentinstance.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	agentinstance.DefaultTokensUsed = agentinstanceDescTokensUsed.Default.(int64)
	// agentinstanceDescCostCents is the schema descriptor for cost_cents field.
	agentinstanceDescCostCents := agentinstanceFields[9].Descriptor()
	// agentinstance.DefaultCostCents holds the default value on creation for the cost_cents field.
	agentinstance.DefaultCostCents = agentinstanceDescCostCents.Default.(int64)
	// agentinstanceDescCreatedAt is the schema descriptor for created_at field.
	agentinstanceDescCreatedAt := agentinstanceFields[11].Descriptor()
	// agentinstance.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentinstance.DefaultCreatedAt = agentinstanceDescCreatedAt.Default.(func() time.Time)
	// agentinstanceDescUpdatedAt is the schema descriptor for updated_at field.
	agentinstanceDescUpdatedAt := agentinstanceFields[12].Descriptor()
	// agentinstance.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentinstance.DefaultUpdatedAt = agentinstanceDescUpdatedAt.Default.(func() time.Time)
	// agentinstance.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentinstance.UpdateDefaultUpdatedAt = agentinstanceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// agentinstanceDescID is the schema descriptor for id field.
	agentinstanceDescID := agentinstanceFields[0].Descriptor()
	// agentinstance.DefaultID holds the default value on creation for the id field.
	agentinstance.DefaultID = agentinstanceDescID.Default.(func() uuid.UUID)
	analysissessionFields := schema.AnalysisSession{}.Fields()
	_ = analysissessionFields
	// analysissessionDescCreatedAt is the schema descriptor for created_at field.
	analysissessionDescCreatedAt := analysissessionFields[11].Descriptor()
	// analysissession.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysissession.DefaultCreatedAt = analysissessionDescCreatedAt.Default.(func() time.Time)
	// analysissessionDescUpdatedAt is the schema descriptor for updated_at field.
	analysissessionDescUpdatedAt := analysissessionFields[12].Descriptor()
	// analysissession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	analysissession.DefaultUpdatedAt = analysissessionDescUpdatedAt.Default.(func() time.Time)
	// analysissession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	analysissession.UpdateDefaultUpdatedAt = analysissessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// analysissessionDescID is the schema descriptor for id field.
	analysissessionDescID := analysissessionFields[0].Descriptor()
	// analysissession.DefaultID holds the default value on creation for the id field.
	analysissession.DefaultID = analysissessionDescID.Default.(func() uuid.UUID)
	auditentryFields := schema.AuditEntry{}.Fields()
	_ = auditentryFields
	// auditentryDescAction is the schema descriptor for action field.
	auditentryDescAction := auditentryFields[1].Descriptor()
	// auditentry.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditentry.ActionValidator = auditentryDescAction.Validators[0].(func(string) error)
	// auditentryDescResourceType is the schema descriptor for resource_type field.
	auditentryDescResourceType := auditentryFields[2].Descriptor()
	// auditentry.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	auditentry.ResourceTypeValidator = auditentryDescResourceType.Validators[0].(func(string) error)
	// auditentryDescCreatedAt is the schema descriptor for created_at field.
	auditentryDescCreatedAt := auditentryFields[9].Descriptor()
	// auditentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditentry.DefaultCreatedAt = auditentryDescCreatedAt.Default.(func() time.Time)
	// auditentryDescID is the schema descriptor for id field.
	auditentryDescID := auditentryFields[0].Descriptor()
	// auditentry.DefaultID holds the default value on creation for the id field.
	auditentry.DefaultID = auditentryDescID.Default.(func() uuid.UUID)
	consensuspolicyFields := schema.ConsensusPolicy{}.Fields()
	_ = consensuspolicyFields
	// consensuspolicyDescName is the schema descriptor for name field.
	consensuspolicyDescName := consensuspolicyFields[2].Descriptor()
	// consensuspolicy.NameValidator is a validator for the "name" field. It is called by the builders before save.
	consensuspolicy.NameValidator = consensuspolicyDescName.Validators[0].(func(string) error)
	// consensuspolicyDescThreshold is the schema descriptor for threshold field.
	consensuspolicyDescThreshold := consensuspolicyFields[4].Descriptor()
	// consensuspolicy.DefaultThreshold holds the default value on creation for the threshold field.
	consensuspolicy.DefaultThreshold = consensuspolicyDescThreshold.Default.(float64)
	// consensuspolicy.ThresholdValidator is a validator for the "threshold" field. It is called by the builders before save.
	consensuspolicy.ThresholdValidator = consensuspolicyDescThreshold.Validators[0].(func(float64) error)
	// consensuspolicyDescCreatedAt is the schema descriptor for created_at field.
	consensuspolicyDescCreatedAt := consensuspolicyFields[7].Descriptor()
	// consensuspolicy.DefaultCreatedAt holds the default value on creation for the created_at field.
	consensuspolicy.DefaultCreatedAt = consensuspolicyDescCreatedAt.Default.(func() time.Time)
	// consensuspolicyDescUpdatedAt is the schema descriptor for updated_at field.
	consensuspolicyDescUpdatedAt := consensuspolicyFields[8].Descriptor()
	// consensuspolicy.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	consensuspolicy.DefaultUpdatedAt = consensuspolicyDescUpdatedAt.Default.(func() time.Time)
	// consensuspolicy.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	consensuspolicy.UpdateDefaultUpdatedAt = consensuspolicyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// consensuspolicyDescID is the schema descriptor for id field.
	consensuspolicyDescID := consensuspolicyFields[0].Descriptor()
	// consensuspolicy.DefaultID holds the default value on creation for the id field.
	consensuspolicy.DefaultID = consensuspolicyDescID.Default.(func() uuid.UUID)
	deliberationmessageFields := schema.DeliberationMessage{}.Fields()
	_ = deliberationmessageFields
	// deliberationmessageDescRound is the schema descriptor for round field.
	deliberationmessageDescRound := deliberationmessageFields[5].Descriptor()
	// deliberationmessage.RoundValidator is a validator for the "round" field. It is called by the builders before save.
	deliberationmessage.RoundValidator = deliberationmessageDescRound.Validators[0].(func(int) error)
	// deliberationmessageDescCreatedAt is the schema descriptor for created_at field.
	deliberationmessageDescCreatedAt := deliberationmessageFields[6].Descriptor()
	// deliberationmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	deliberationmessage.DefaultCreatedAt = deliberationmessageDescCreatedAt.Default.(func() time.Time)
	// deliberationmessageDescUpdatedAt is the schema descriptor for updated_at field.
	deliberationmessageDescUpdatedAt := deliberationmessageFields[7].Descriptor()
	// deliberationmessage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	deliberationmessage.DefaultUpdatedAt = deliberationmessageDescUpdatedAt.Default.(func() time.Time)
	// deliberationmessage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	deliberationmessage.UpdateDefaultUpdatedAt = deliberationmessageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// deliberationmessageDescID is the schema descriptor for id field.
	deliberationmessageDescID := deliberationmessageFields[0].Descriptor()
	// deliberationmessage.DefaultID holds the default value on creation for the id field.
	deliberationmessage.DefaultID = deliberationmessageDescID.Default.(func() uuid.UUID)
	detectionruleFields := schema.DetectionRule{}.Fields()
	_ = detectionruleFields
	// detectionruleDescName is the schema descriptor for name field.
	detectionruleDescName := detectionruleFields[2].Descriptor()
	// detectionrule.NameValidator is a validator for the "name" field. It is called by the builders before save.
	detectionrule.NameValidator = detectionruleDescName.Validators[0].(func(string) error)
	// detectionruleDescEnabled is the schema descriptor for enabled field.
	detectionruleDescEnabled := detectionruleFields[6].Descriptor()
	// detectionrule.DefaultEnabled holds the default value on creation for the enabled field.
	detectionrule.DefaultEnabled = detectionruleDescEnabled.Default.(bool)
	// detectionruleDescCreatedAt is the schema descriptor for created_at field.
	detectionruleDescCreatedAt := detectionruleFields[8].Descriptor()
	// detectionrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	detectionrule.DefaultCreatedAt = detectionruleDescCreatedAt.Default.(func() time.Time)
	// detectionruleDescUpdatedAt is the schema descriptor for updated_at field.
	detectionruleDescUpdatedAt := detectionruleFields[9].Descriptor()
	// detectionrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	detectionrule.DefaultUpdatedAt = detectionruleDescUpdatedAt.Default.(func() time.Time)
	// detectionrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	detectionrule.UpdateDefaultUpdatedAt = detectionruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// detectionruleDescID is the schema descriptor for id field.
	detectionruleDescID := detectionruleFields[0].Descriptor()
	// detectionrule.DefaultID holds the default value on creation for the id field.
	detectionrule.DefaultID = detectionruleDescID.Default.(func() uuid.UUID)
	ghostprotocolconfigFields := schema.GhostProtocolConfig{}.Fields()
	_ = ghostprotocolconfigFields
	// ghostprotocolconfigDescName is the schema descriptor for name field.
	ghostprotocolconfigDescName := ghostprotocolconfigFields[2].Descriptor()
	// ghostprotocolconfig.NameValidator is a validator for the "name" field. It is called by the builders before save.
	ghostprotocolconfig.NameValidator = ghostprotocolconfigDescName.Validators[0].(func(string) error)
	// ghostprotocolconfigDescEnabled is the schema descriptor for enabled field.
	ghostprotocolconfigDescEnabled := ghostprotocolconfigFields[3].Descriptor()
	// ghostprotocolconfig.DefaultEnabled holds the default value on creation for the enabled field.
	ghostprotocolconfig.DefaultEnabled = ghostprotocolconfigDescEnabled.Default.(bool)
	// ghostprotocolconfigDescWipeDelaySeconds is the schema descriptor for wipe_delay_seconds field.
	ghostprotocolconfigDescWipeDelaySeconds := ghostprotocolconfigFields[6].Descriptor()
	// ghostprotocolconfig.DefaultWipeDelaySeconds holds the default value on creation for the wipe_delay_seconds field.
	ghostprotocolconfig.DefaultWipeDelaySeconds = ghostprotocolconfigDescWipeDelaySeconds.Default.(int)
	// ghostprotocolconfig.WipeDelaySecondsValidator is a validator for the "wipe_delay_seconds" field. It is called by the builders before save.
	ghostprotocolconfig.WipeDelaySecondsValidator = ghostprotocolconfigDescWipeDelaySeconds.Validators[0].(func(int) error)
	// ghostprotocolconfigDescMaxSessionDurationSeconds is the schema descriptor for max_session_duration_seconds field.
	ghostprotocolconfigDescMaxSessionDurationSeconds := ghostprotocolconfigFields[7].Descriptor()
	// ghostprotocolconfig.DefaultMaxSessionDurationSeconds holds the default value on creation for the max_session_duration_seconds field.
	ghostprotocolconfig.DefaultMaxSessionDurationSeconds = ghostprotocolconfigDescMaxSessionDurationSeconds.Default.(int)
	// ghostprotocolconfig.MaxSessionDurationSecondsValidator is a validator for the "max_session_duration_seconds" field. It is called by the builders before save.
	ghostprotocolconfig.MaxSessionDurationSecondsValidator = ghostprotocolconfigDescMaxSessionDurationSeconds.Validators[0].(func(int) error)
	// ghostprotocolconfigDescAutoTerminateOnExpiry is the schema descriptor for auto_terminate_on_expiry field.
	ghostprotocolconfigDescAutoTerminateOnExpiry := ghostprotocolconfigFields[8].Descriptor()
	// ghostprotocolconfig.DefaultAutoTerminateOnExpiry holds the default value on creation for the auto_terminate_on_expiry field.
	ghostprotocolconfig.DefaultAutoTerminateOnExpiry = ghostprotocolconfigDescAutoTerminateOnExpiry.Default.(bool)
	// ghostprotocolconfigDescCryptoShred is the schema descriptor for crypto_shred field.
	ghostprotocolconfigDescCryptoShred := ghostprotocolconfigFields[9].Descriptor()
	// ghostprotocolconfig.DefaultCryptoShred holds the default value on creation for the crypto_shred field.
	ghostprotocolconfig.DefaultCryptoShred = ghostprotocolconfigDescCryptoShred.Default.(bool)
	// ghostprotocolconfigDescCreatedAt is the schema descriptor for created_at field.
	ghostprotocolconfigDescCreatedAt := ghostprotocolconfigFields[10].Descriptor()
	// ghostprotocolconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	ghostprotocolconfig.DefaultCreatedAt = ghostprotocolconfigDescCreatedAt.Default.(func() time.Time)
	// ghostprotocolconfigDescUpdatedAt is the schema descriptor for updated_at field.
	ghostprotocolconfigDescUpdatedAt := ghostprotocolconfigFields[11].Descriptor()
	// ghostprotocolconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ghostprotocolconfig.DefaultUpdatedAt = ghostprotocolconfigDescUpdatedAt.Default.(func() time.Time)
	// ghostprotocolconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ghostprotocolconfig.UpdateDefaultUpdatedAt = ghostprotocolconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	// ghostprotocolconfigDescID is the schema descriptor for id field.
	ghostprotocolconfigDescID := ghostprotocolconfigFields[0].Descriptor()
	// ghostprotocolconfig.DefaultID holds the default value on creation for the id field.
	ghostprotocolconfig.DefaultID = ghostprotocolconfigDescID.Default.(func() uuid.UUID)
	policyruleFields := schema.PolicyRule{}.Fields()
	_ = policyruleFields
	// policyruleDescName is the schema descriptor for name field.
	policyruleDescName := policyruleFields[2].Descriptor()
	// policyrule.NameValidator is a validator for the "name" field. It is called by the builders before save.
	policyrule.NameValidator = policyruleDescName.Validators[0].(func(string) error)
	// policyruleDescPriority is the schema descriptor for priority field.
	policyruleDescPriority := policyruleFields[5].Descriptor()
	// policyrule.DefaultPriority holds the default value on creation for the priority field.
	policyrule.DefaultPriority = policyruleDescPriority.Default.(int)
	// policyrule.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	policyrule.PriorityValidator = policyruleDescPriority.Validators[0].(func(int) error)
	// policyruleDescEnabled is the schema descriptor for enabled field.
	policyruleDescEnabled := policyruleFields[6].Descriptor()
	// policyrule.DefaultEnabled holds the default value on creation for the enabled field.
	policyrule.DefaultEnabled = policyruleDescEnabled.Default.(bool)
	// policyruleDescCreatedAt is the schema descriptor for created_at field.
	policyruleDescCreatedAt := policyruleFields[11].Descriptor()
	// policyrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	policyrule.DefaultCreatedAt = policyruleDescCreatedAt.Default.(func() time.Time)
	// policyruleDescUpdatedAt is the schema descriptor for updated_at field.
	policyruleDescUpdatedAt := policyruleFields[12].Descriptor()
	// policyrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	policyrule.DefaultUpdatedAt = policyruleDescUpdatedAt.Default.(func() time.Time)
	// policyrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	policyrule.UpdateDefaultUpdatedAt = policyruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// policyruleDescID is the schema descriptor for id field.
	policyruleDescID := policyruleFields[0].Descriptor()
	// policyrule.DefaultID holds the default value on creation for the id field.
	policyrule.DefaultID = policyruleDescID.Default.(func() uuid.UUID)
	policyviolationFields := schema.PolicyViolation{}.Fields()
	_ = policyviolationFields
	// policyviolationDescResolved is the schema descriptor for resolved field.
	policyviolationDescResolved := policyviolationFields[8].Descriptor()
	// policyviolation.DefaultResolved holds the default value on creation for the resolved field.
	policyviolation.DefaultResolved = policyviolationDescResolved.Default.(bool)
	// policyviolationDescCreatedAt is the schema descriptor for created_at field.
	policyviolationDescCreatedAt := policyviolationFields[11].Descriptor()
	// policyviolation.DefaultCreatedAt holds the default value on creation for the created_at field.
	policyviolation.DefaultCreatedAt = policyviolationDescCreatedAt.Default.(func() time.Time)
	// policyviolationDescUpdatedAt is the schema descriptor for updated_at field.
	policyviolationDescUpdatedAt := policyviolationFields[12].Descriptor()
	// policyviolation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	policyviolation.DefaultUpdatedAt = policyviolationDescUpdatedAt.Default.(func() time.Time)
	// policyviolation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	policyviolation.UpdateDefaultUpdatedAt = policyviolationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// policyviolationDescID is the schema descriptor for id field.
	policyviolationDescID := policyviolationFields[0].Descriptor()
	// policyviolation.DefaultID holds the default value on creation for the id field.
	policyviolation.DefaultID = policyviolationDescID.Default.(func() uuid.UUID)
	prompttemplateFields := schema.PromptTemplate{}.Fields()
	_ = prompttemplateFields
	// prompttemplateDescName is the schema descriptor for name field.
	prompttemplateDescName := prompttemplateFields[2].Descriptor()
	// prompttemplate.NameValidator is a validator for the "name" field. It is called by the builders before save.
	prompttemplate.NameValidator = prompttemplateDescName.Validators[0].(func(string) error)
	// prompttemplateDescCreatedAt is the schema descriptor for created_at field.
	prompttemplateDescCreatedAt := prompttemplateFields[4].Descriptor()
	// prompttemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	prompttemplate.DefaultCreatedAt = prompttemplateDescCreatedAt.Default.(func() time.Time)
	// prompttemplateDescUpdatedAt is the schema descriptor for updated_at field.
	prompttemplateDescUpdatedAt := prompttemplateFields[5].Descriptor()
	// prompttemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prompttemplate.DefaultUpdatedAt = prompttemplateDescUpdatedAt.Default.(func() time.Time)
	// prompttemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prompttemplate.UpdateDefaultUpdatedAt = prompttemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// prompttemplateDescID is the schema descriptor for id field.
	prompttemplateDescID := prompttemplateFields[0].Descriptor()
	// prompttemplate.DefaultID holds the default value on creation for the id field.
	prompttemplate.DefaultID = prompttemplateDescID.Default.(func() uuid.UUID)
	registeredagentFields := schema.RegisteredAgent{}.Fields()
	_ = registeredagentFields
	// registeredagentDescName is the schema descriptor for name field.
	registeredagentDescName := registeredagentFields[2].Descriptor()
	// registeredagent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	registeredagent.NameValidator = registeredagentDescName.Validators[0].(func(string) error)
	// registeredagentDescAPIKeyPrefix is the schema descriptor for api_key_prefix field.
	registeredagentDescAPIKeyPrefix := registeredagentFields[4].Descriptor()
	// registeredagent.APIKeyPrefixValidator is a validator for the "api_key_prefix" field. It is called by the builders before save.
	registeredagent.APIKeyPrefixValidator = registeredagentDescAPIKeyPrefix.Validators[0].(func(string) error)
	// registeredagentDescEventCount is the schema descriptor for event_count field.
	registeredagentDescEventCount := registeredagentFields[9].Descriptor()
	// registeredagent.DefaultEventCount holds the default value on creation for the event_count field.
	registeredagent.DefaultEventCount = registeredagentDescEventCount.Default.(int64)
	// registeredagentDescCreatedAt is the schema descriptor for created_at field.
	registeredagentDescCreatedAt := registeredagentFields[11].Descriptor()
	// registeredagent.DefaultCreatedAt holds the default value on creation for the created_at field.
	registeredagent.DefaultCreatedAt = registeredagentDescCreatedAt.Default.(func() time.Time)
	// registeredagentDescUpdatedAt is the schema descriptor for updated_at field.
	registeredagentDescUpdatedAt := registeredagentFields[12].Descriptor()
	// registeredagent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	registeredagent.DefaultUpdatedAt = registeredagentDescUpdatedAt.Default.(func() time.Time)
	// registeredagent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	registeredagent.UpdateDefaultUpdatedAt = registeredagentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// registeredagentDescID is the schema descriptor for id field.
	registeredagentDescID := registeredagentFields[0].Descriptor()
	// registeredagent.DefaultID holds the default value on creation for the id field.
	registeredagent.DefaultID = registeredagentDescID.Default.(func() uuid.UUID)
	verdictFields := schema.Verdict{}.Fields()
	_ = verdictFields
	// verdictDescCreatedAt is the schema descriptor for created_at field.
	verdictDescCreatedAt := verdictFields[10].Descriptor()
	// verdict.DefaultCreatedAt holds the default value on creation for the created_at field.
	verdict.DefaultCreatedAt = verdictDescCreatedAt.Default.(func() time.Time)
	// verdictDescID is the schema descriptor for id field.
	verdictDescID := verdictFields[0].Descriptor()
	// verdict.DefaultID holds the default value on creation for the id field.
	verdict.DefaultID = verdictDescID.Default.(func() uuid.UUID)
	workflowFields := schema.Workflow{}.Fields()
	_ = workflowFields
	// workflowDescName is the schema descriptor for name field.
	workflowDescName := workflowFields[2].Descriptor()
	// workflow.NameValidator is a validator for the "name" field. It is called by the builders before save.
	workflow.NameValidator = workflowDescName.Validators[0].(func(string) error)
	// workflowDescEnabled is the schema descriptor for enabled field.
	workflowDescEnabled := workflowFields[5].Descriptor()
	// workflow.DefaultEnabled holds the default value on creation for the enabled field.
	workflow.DefaultEnabled = workflowDescEnabled.Default.(bool)
	// workflowDescCreatedAt is the schema descriptor for created_at field.
	workflowDescCreatedAt := workflowFields[9].Descriptor()
	// workflow.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflow.DefaultCreatedAt = workflowDescCreatedAt.Default.(func() time.Time)
	// workflowDescUpdatedAt is the schema descriptor for updated_at field.
	workflowDescUpdatedAt := workflowFields[10].Descriptor()
	// workflow.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflow.DefaultUpdatedAt = workflowDescUpdatedAt.Default.(func() time.Time)
	// workflow.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflow.UpdateDefaultUpdatedAt = workflowDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workflowDescID is the schema descriptor for id field.
	workflowDescID := workflowFields[0].Descriptor()
	// workflow.DefaultID holds the default value on creation for the id field.
	workflow.DefaultID = workflowDescID.Default.(func() uuid.UUID)
	workflowstepFields := schema.WorkflowStep{}.Fields()
	_ = workflowstepFields
	// workflowstepDescStepIndex is the schema descriptor for step_index field.
	workflowstepDescStepIndex := workflowstepFields[4].Descriptor()
	// workflowstep.StepIndexValidator is a validator for the "step_index" field. It is called by the builders before save.
	workflowstep.StepIndexValidator = workflowstepDescStepIndex.Validators[0].(func(int) error)
	// workflowstepDescCreatedAt is the schema descriptor for created_at field.
	workflowstepDescCreatedAt := workflowstepFields[5].Descriptor()
	// workflowstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowstep.DefaultCreatedAt = workflowstepDescCreatedAt.Default.(func() time.Time)
	// workflowstepDescUpdatedAt is the schema descriptor for updated_at field.
	workflowstepDescUpdatedAt := workflowstepFields[6].Descriptor()
	// workflowstep.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflowstep.DefaultUpdatedAt = workflowstepDescUpdatedAt.Default.(func() time.Time)
	// workflowstep.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflowstep.UpdateDefaultUpdatedAt = workflowstepDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workflowstepDescID is the schema descriptor for id field.
	workflowstepDescID := workflowstepFields[0].Descriptor()
	// workflowstep.DefaultID holds the default value on creation for the id field.
	workflowstep.DefaultID = workflowstepDescID.Default.(func() uuid.UUID)
	workspaceFields := schema.Workspace{}.Fields()
	_ = workspaceFields
	// workspaceDescName is the schema descriptor for name field.
	workspaceDescName := workspaceFields[1].Descriptor()
	// workspace.NameValidator is a validator for the "name" field. It is called by the builders before save.
	workspace.NameValidator = workspaceDescName.Validators[0].(func(string) error)
	// workspaceDescLlmSpendCents is the schema descriptor for llm_spend_cents field.
	workspaceDescLlmSpendCents := workspaceFields[4].Descriptor()
	// workspace.DefaultLlmSpendCents holds the default value on creation for the llm_spend_cents field.
	workspace.DefaultLlmSpendCents = workspaceDescLlmSpendCents.Default.(int64)
	// workspaceDescLlmTokensUsed is the schema descriptor for llm_tokens_used field.
	workspaceDescLlmTokensUsed := workspaceFields[5].Descriptor()
	// workspace.DefaultLlmTokensUsed holds the default value on creation for the llm_tokens_used field.
	workspace.DefaultLlmTokensUsed = workspaceDescLlmTokensUsed.Default.(int64)
	// workspaceDescCreatedAt is the schema descriptor for created_at field.
	workspaceDescCreatedAt := workspaceFields[6].Descriptor()
	// workspace.DefaultCreatedAt holds the default value on creation for the created_at field.
	workspace.DefaultCreatedAt = workspaceDescCreatedAt.Default.(func() time.Time)
	// workspaceDescUpdatedAt is the schema descriptor for updated_at field.
	workspaceDescUpdatedAt := workspaceFields[7].Descriptor()
	// workspace.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workspace.DefaultUpdatedAt = workspaceDescUpdatedAt.Default.(func() time.Time)
	// workspace.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workspace.UpdateDefaultUpdatedAt = workspaceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workspaceDescID is the schema descriptor for id field.
	workspaceDescID := workspaceFields[0].Descriptor()
	// workspace.DefaultID holds the default value on creation for the id field.
	workspace.DefaultID = workspaceDescID.Default.(func() uuid.UUID)
}
