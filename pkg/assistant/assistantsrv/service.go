package assistantsrv

import (
	"bytes"
	"context"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/orgstruct/bff/pkg/ai/llm"
	"github.com/orgstruct/bff/pkg/ai/speech"
	"github.com/orgstruct/bff/pkg/assistant"
	"github.com/orgstruct/bff/pkg/config"
	"github.com/orgstruct/bff/pkg/fsx"
	"github.com/orgstruct/bff/pkg/logx"
)

// VoiceService runs the voice pipeline: transcription, memory, prompt
// assembly, completion, cleanup, command gating, rule policy and speech
// synthesis. One request is one strictly sequential chain of outbound
// calls; stages either abort the request (STT, main completion, TTS) or
// degrade to a logged no-op (memory writes, validation sub-calls).
type VoiceService struct {
	stt       *speech.STTClient
	tts       *speech.TTSClient
	llm       *llm.Client
	validator *assistant.ActionValidator

	memory       assistant.MemoryRepository
	instructions assistant.InstructionRepository
	rules        assistant.RuleRepository
	notifier     assistant.Notifier

	archive fsx.FileWriter // nil when audio archiving is disabled
	cfg     *config.AssistantConfig
}

func NewVoiceService(
	stt *speech.STTClient,
	tts *speech.TTSClient,
	llmClient *llm.Client,
	memory assistant.MemoryRepository,
	instructions assistant.InstructionRepository,
	rules assistant.RuleRepository,
	notifier assistant.Notifier,
	cfg *config.AssistantConfig,
) *VoiceService {
	return &VoiceService{
		stt:          stt,
		tts:          tts,
		llm:          llmClient,
		validator:    assistant.NewActionValidator(llmClient),
		memory:       memory,
		instructions: instructions,
		rules:        rules,
		notifier:     notifier,
		cfg:          cfg,
	}
}

// WithArchive enables writing request/response audio to the given store
func (s *VoiceService) WithArchive(archive fsx.FileWriter) *VoiceService {
	s.archive = archive
	return s
}

// AskVoice processes one voice request end to end and returns the
// synthesized reply. A nil payload with a nil error means the answer
// was command-only and no audio was produced.
func (s *VoiceService) AskVoice(ctx context.Context, audio []byte, filename, contentType string) ([]byte, error) {
	requestID := uuid.NewString()
	s.archiveAudio(ctx, requestID, "in"+path.Ext(filename), audio)

	transcript, err := s.stt.Transcribe(ctx, bytes.NewReader(audio),
		speech.WithFilename(filename),
		speech.WithContentType(contentType),
	)
	if err != nil {
		return nil, assistant.ErrTranscriptionFailed().WithDetail("cause", err.Error())
	}
	userText := transcript.Text
	logx.Infof("[voice] user text: %s", userText)

	s.appendMemory(ctx, assistant.RoleUser, userText)

	// Wake-word fast path: dispatch without a completion round trip.
	if body, ok := assistant.DetectLocalCommand(userText); ok {
		return s.runLocalCommand(ctx, requestID, body)
	}

	answer, err := s.ask(ctx, userText)
	if err != nil {
		return nil, err
	}

	validated := s.validator.ValidateAnswer(ctx, userText, answer)
	validated = s.validator.ValidateCommand(ctx, userText, validated)

	stripped, commands := assistant.ExtractCommands(validated)
	for _, cmd := range commands {
		s.appendMemory(ctx, assistant.RoleAssistant, assistant.WrapCommand(cmd))
		s.dispatchCommand(ctx, cmd)
	}

	final := strings.TrimSpace(stripped)
	if final == "" {
		// Command-only content: the request terminates without audio.
		logx.Infof("[voice] command-only answer, skipping synthesis")
		return nil, nil
	}

	final = assistant.ApplyRules(s.loadRules(ctx), final)
	s.appendMemory(ctx, assistant.RoleAssistant, final)

	out, err := s.tts.Synthesize(ctx, final)
	if err != nil {
		return nil, assistant.ErrSynthesisFailed().WithDetail("cause", err.Error())
	}
	s.archiveAudio(ctx, requestID, "out.wav", out.Content)

	return out.Content, nil
}

// ask assembles the prompt from instructions and recent memory and runs
// the main completion. Failure here is fatal to the request.
func (s *VoiceService) ask(ctx context.Context, userText string) (string, error) {
	instructions := s.loadInstructions(ctx)
	turns := s.loadMemory(ctx)

	prompt := assistant.BuildPrompt(instructions, assistant.RenderHistory(turns), userText)
	logx.Debugf("[voice] prompt:\n%s", prompt)

	resp, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return "", assistant.ErrCompletionFailed().WithDetail("cause", err.Error())
	}

	return assistant.Clean(resp.Answer), nil
}

// runLocalCommand dispatches the fast-path command and speaks a fixed
// acknowledgement. Dispatch failure is fatal: the user asked for
// exactly this action.
func (s *VoiceService) runLocalCommand(ctx context.Context, requestID, body string) ([]byte, error) {
	logx.Infof("[voice] local command detected: %s", body)

	if err := s.notifier.Notify(ctx, body); err != nil {
		return nil, assistant.ErrDispatchFailed().WithDetail("cause", err.Error())
	}
	s.appendMemory(ctx, assistant.RoleAssistant,
		assistant.WrapCommand(assistant.TelegramCommandPrefix+body))

	out, err := s.tts.Synthesize(ctx, assistant.CommandAck)
	if err != nil {
		return nil, assistant.ErrSynthesisFailed().WithDetail("cause", err.Error())
	}
	s.archiveAudio(ctx, requestID, "out.wav", out.Content)

	return out.Content, nil
}

// dispatchCommand executes one extracted command block. Only Telegram
// dispatch commands are known; failures are logged, never fatal.
func (s *VoiceService) dispatchCommand(ctx context.Context, cmd string) {
	body, ok := strings.CutPrefix(cmd, assistant.TelegramCommandPrefix)
	if !ok {
		logx.Warnf("[voice] unknown command ignored: %s", cmd)
		return
	}
	if err := s.notifier.Notify(ctx, strings.TrimSpace(body)); err != nil {
		logx.Errorf("[voice] command dispatch failed: %v", err)
	}
}

// appendMemory persists one turn; losing a memory write must not abort
// the user-facing pipeline.
func (s *VoiceService) appendMemory(ctx context.Context, role assistant.Role, text string) {
	if err := s.memory.Append(ctx, role, text); err != nil {
		logx.Errorf("[voice] memory append failed: %v", err)
	}
}

func (s *VoiceService) loadMemory(ctx context.Context) []assistant.Turn {
	turns, err := s.memory.Recent(ctx, s.cfg.MemoryLimit)
	if err != nil {
		logx.Errorf("[voice] memory read failed: %v", err)
		return nil
	}
	return turns
}

func (s *VoiceService) loadInstructions(ctx context.Context) []string {
	docs, err := s.instructions.FindAll(ctx, s.cfg.InstructionLimit)
	if err != nil {
		logx.Errorf("[voice] instruction read failed: %v", err)
		return nil
	}
	values := make([]string, 0, len(docs))
	for _, d := range docs {
		values = append(values, d.Value)
	}
	return values
}

func (s *VoiceService) loadRules(ctx context.Context) []assistant.Rule {
	rules, err := s.rules.FindAll(ctx)
	if err != nil {
		logx.Errorf("[voice] rule read failed: %v", err)
		return nil
	}
	return rules
}

func (s *VoiceService) archiveAudio(ctx context.Context, requestID, name string, content []byte) {
	if s.archive == nil || len(content) == 0 {
		return
	}
	key := path.Join("voice", requestID, name)
	if err := s.archive.WriteFile(ctx, key, bytes.NewReader(content)); err != nil {
		logx.Errorf("[voice] audio archive write failed: %v", err)
	}
}
